package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEntriesTableName = "financial_entries"

type financialEntryItem struct {
	ID                string `dynamodbav:"id"`
	Kind              string `dynamodbav:"kind"`
	Description       string `dynamodbav:"description"`
	Amount            string `dynamodbav:"amount"`
	DueAt             string `dynamodbav:"due_at"`
	PaidAt            string `dynamodbav:"paid_at,omitempty"`
	Status            string `dynamodbav:"status"`
	LinkedOrderID     string `dynamodbav:"linked_order_id,omitempty"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
}

// FinancialEntryDynamoRepository persists FinancialEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The pending->paid flip is a conditional UpdateItem so that a concurrent
// settle cannot apply twice; its inverse backs the manual rollback of the
// composite settle operation.
type FinancialEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFinancialEntryRepository = (*FinancialEntryDynamoRepository)(nil)

func NewFinancialEntryDynamoRepository(ddb *dynamodb.Client) *FinancialEntryDynamoRepository {
	return &FinancialEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FINANCIAL_ENTRIES_TABLE", defaultEntriesTableName),
	}
}

func (r *FinancialEntryDynamoRepository) List(ctx context.Context) ([]entities.FinancialEntry, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	out := make([]entities.FinancialEntry, 0, len(items))
	for _, raw := range items {
		var it financialEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromFinancialEntryItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueAt.After(out[j].DueAt) })
	return out, nil
}

func (r *FinancialEntryDynamoRepository) Create(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	av, err := attributevalue.MarshalMap(toFinancialEntryItem(e))
	if err != nil {
		return entities.FinancialEntry{}, err
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
		return entities.FinancialEntry{}, err
	}
	return e, nil
}

func (r *FinancialEntryDynamoRepository) Update(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	av, err := attributevalue.MarshalMap(toFinancialEntryItem(e))
	if err != nil {
		return entities.FinancialEntry{}, err
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
			return entities.FinancialEntry{}, nil
		}
		return entities.FinancialEntry{}, err
	}
	return e, nil
}

func (r *FinancialEntryDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *FinancialEntryDynamoRepository) SetPaid(ctx context.Context, id string, paidAt time.Time, providerPaymentID string) (entities.FinancialEntry, error) {
	expr := "SET #status = :paid, #paid_at = :paid_at"
	values := map[string]types.AttributeValue{
		":paid":    &types.AttributeValueMemberS{Value: string(entities.EntryStatusPaid)},
		":pending": &types.AttributeValueMemberS{Value: string(entities.EntryStatusPending)},
		":paid_at": &types.AttributeValueMemberS{Value: timeToString(paidAt)},
	}
	names := map[string]string{
		"#status":  "status",
		"#paid_at": "paid_at",
	}
	if providerPaymentID != "" {
		expr += ", #provider_payment_id = :provider_payment_id"
		values[":provider_payment_id"] = &types.AttributeValueMemberS{Value: providerPaymentID}
		names["#provider_payment_id"] = "provider_payment_id"
	}

	return r.update(ctx, id, expr, "attribute_exists(#id) AND #status = :pending", values, names)
}

func (r *FinancialEntryDynamoRepository) SetPending(ctx context.Context, id string) (entities.FinancialEntry, error) {
	expr := "SET #status = :pending REMOVE #paid_at, #provider_payment_id"
	values := map[string]types.AttributeValue{
		":pending": &types.AttributeValueMemberS{Value: string(entities.EntryStatusPending)},
	}
	names := map[string]string{
		"#status":              "status",
		"#paid_at":             "paid_at",
		"#provider_payment_id": "provider_payment_id",
	}

	return r.update(ctx, id, expr, "attribute_exists(#id)", values, names)
}

func (r *FinancialEntryDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.FinancialEntry, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FinancialEntry{}, nil
		}
		return entities.FinancialEntry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FinancialEntry{}, nil
	}
	var it financialEntryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FinancialEntry{}, err
	}
	return fromFinancialEntryItem(it), nil
}

func toFinancialEntryItem(e entities.FinancialEntry) financialEntryItem {
	return financialEntryItem{
		ID:                e.ID,
		Kind:              string(e.Kind),
		Description:       e.Description,
		Amount:            decimalToString(e.Amount),
		DueAt:             timeToString(e.DueAt),
		PaidAt:            timePtrToString(e.PaidAt),
		Status:            string(e.Status),
		LinkedOrderID:     e.LinkedOrderID,
		ProviderPaymentID: e.ProviderPaymentID,
	}
}

func fromFinancialEntryItem(it financialEntryItem) entities.FinancialEntry {
	return entities.FinancialEntry{
		ID:                it.ID,
		Kind:              entities.EntryKind(it.Kind),
		Description:       it.Description,
		Amount:            decimalFromString(it.Amount),
		DueAt:             timeFromString(it.DueAt),
		PaidAt:            timePtrFromString(it.PaidAt),
		Status:            entities.EntryStatus(it.Status),
		LinkedOrderID:     it.LinkedOrderID,
		ProviderPaymentID: it.ProviderPaymentID,
	}
}
