package repository

import (
	"context"
	"errors"
	"sort"

	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "service_orders"

type orderLineItemItem struct {
	ServiceID string `dynamodbav:"service_id"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
	LineTotal string `dynamodbav:"line_total"`
}

type serviceOrderItem struct {
	ID          string              `dynamodbav:"id"`
	ClientID    string              `dynamodbav:"client_id"`
	LineItems   []orderLineItemItem `dynamodbav:"line_items"`
	TotalAmount string              `dynamodbav:"total_amount"`
	Status      string              `dynamodbav:"status"`
	OpenedAt    string              `dynamodbav:"opened_at"`
	ExpectedAt  string              `dynamodbav:"expected_at,omitempty"`
	CompletedAt string              `dynamodbav:"completed_at,omitempty"`
	Notes       string              `dynamodbav:"notes,omitempty"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items are embedded in the order item; the order is always written
// whole, which keeps the derived total and its lines in one atomic PutItem.
type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ServiceOrder, 0, len(items))
	for _, raw := range items {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromServiceOrderItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OpenedAt.After(out[j].OpenedAt) })
	return out, nil
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	lines := make([]orderLineItemItem, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		lines = append(lines, orderLineItemItem{
			ServiceID: li.ServiceID,
			Quantity:  li.Quantity,
			UnitPrice: decimalToString(li.UnitPrice),
			LineTotal: decimalToString(li.LineTotal),
		})
	}
	return serviceOrderItem{
		ID:          o.ID,
		ClientID:    o.ClientID,
		LineItems:   lines,
		TotalAmount: decimalToString(o.TotalAmount),
		Status:      string(o.Status),
		OpenedAt:    timeToString(o.OpenedAt),
		ExpectedAt:  timePtrToString(o.ExpectedAt),
		CompletedAt: timePtrToString(o.CompletedAt),
		Notes:       o.Notes,
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	lines := make([]entities.OrderLineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lines = append(lines, entities.OrderLineItem{
			ServiceID: li.ServiceID,
			Quantity:  li.Quantity,
			UnitPrice: decimalFromString(li.UnitPrice),
			LineTotal: decimalFromString(li.LineTotal),
		})
	}
	return entities.ServiceOrder{
		ID:          it.ID,
		ClientID:    it.ClientID,
		LineItems:   lines,
		TotalAmount: decimalFromString(it.TotalAmount),
		Status:      entities.OrderStatus(it.Status),
		OpenedAt:    timeFromString(it.OpenedAt),
		ExpectedAt:  timePtrFromString(it.ExpectedAt),
		CompletedAt: timePtrFromString(it.CompletedAt),
		Notes:       it.Notes,
	}
}
