package repository

import (
	"context"
	"sort"

	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultMovementsTableName = "cash_movements"

type cashMovementItem struct {
	ID          string `dynamodbav:"id"`
	Kind        string `dynamodbav:"kind"`
	Amount      string `dynamodbav:"amount"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category"`
	OccurredAt  string `dynamodbav:"occurred_at"`
}

// CashMovementDynamoRepository persists the append-only cash register in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// There is no update or delete path: movements are history, and the balance
// is always derived from the full set.
type CashMovementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICashMovementRepository = (*CashMovementDynamoRepository)(nil)

func NewCashMovementDynamoRepository(ddb *dynamodb.Client) *CashMovementDynamoRepository {
	return &CashMovementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CASH_MOVEMENTS_TABLE", defaultMovementsTableName),
	}
}

func (r *CashMovementDynamoRepository) List(ctx context.Context) ([]entities.CashMovement, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	out := make([]entities.CashMovement, 0, len(items))
	for _, raw := range items {
		var it cashMovementItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromCashMovementItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func (r *CashMovementDynamoRepository) Create(ctx context.Context, m entities.CashMovement) (entities.CashMovement, error) {
	av, err := attributevalue.MarshalMap(toCashMovementItem(m))
	if err != nil {
		return entities.CashMovement{}, err
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
		return entities.CashMovement{}, err
	}
	return m, nil
}

func toCashMovementItem(m entities.CashMovement) cashMovementItem {
	return cashMovementItem{
		ID:          m.ID,
		Kind:        string(m.Kind),
		Amount:      decimalToString(m.Amount),
		Description: m.Description,
		Category:    m.Category,
		OccurredAt:  timeToString(m.OccurredAt),
	}
}

func fromCashMovementItem(it cashMovementItem) entities.CashMovement {
	return entities.CashMovement{
		ID:          it.ID,
		Kind:        entities.MovementKind(it.Kind),
		Amount:      decimalFromString(it.Amount),
		Description: it.Description,
		Category:    it.Category,
		OccurredAt:  timeFromString(it.OccurredAt),
	}
}
