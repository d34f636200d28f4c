package repository

import (
	"context"
	"strconv"
	"time"

	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMicroDepositsTableName = "micro_deposits"
	depositsIntentIDIndex         = "payment_intent_id-index"
	depositsChangeOrderIDIndex    = "change_order_id-index"
)

type microDepositItem struct {
	ID              string `dynamodbav:"id"`
	ChangeOrderID   string `dynamodbav:"change_order_id"`
	Amount          string `dynamodbav:"amount"`
	Currency        string `dynamodbav:"currency"`
	Status          string `dynamodbav:"status"`
	PaymentMethod   string `dynamodbav:"payment_method"`
	PaymentIntentID string `dynamodbav:"payment_intent_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	PaidAt          string `dynamodbav:"paid_at,omitempty"`
	FailedAt        string `dynamodbav:"failed_at,omitempty"`
	FailedReason    string `dynamodbav:"failed_reason,omitempty"`
	RefundedAt      string `dynamodbav:"refunded_at,omitempty"`
	RefundReason    string `dynamodbav:"refund_reason,omitempty"`
}

// MicroDepositDynamoRepository persists MicroDeposit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_intent_id-index (PK: payment_intent_id)
//   - GSI: change_order_id-index (PK: change_order_id)

type MicroDepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMicroDepositRepository = (*MicroDepositDynamoRepository)(nil)

func NewMicroDepositDynamoRepository(ddb *dynamodb.Client) *MicroDepositDynamoRepository {
	return &MicroDepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MICRO_DEPOSITS_TABLE", defaultMicroDepositsTableName),
	}
}

func (r *MicroDepositDynamoRepository) Create(ctx context.Context, d entities.MicroDeposit) (entities.MicroDeposit, error) {
	av, err := attributevalue.MarshalMap(toMicroDepositItem(d))
	if err != nil {
		return entities.MicroDeposit{}, err
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
		return entities.MicroDeposit{}, err
	}
	return d, nil
}

func (r *MicroDepositDynamoRepository) GetByID(ctx context.Context, id string) (entities.MicroDeposit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MicroDeposit{}, err
	}
	if len(out.Item) == 0 {
		return entities.MicroDeposit{}, nil
	}

	var it microDepositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MicroDeposit{}, err
	}
	return fromMicroDepositItem(it), nil
}

func (r *MicroDepositDynamoRepository) GetByPaymentIntentID(ctx context.Context, intentID string) (entities.MicroDeposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsIntentIDIndex),
		KeyConditionExpression: aws.String("payment_intent_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: intentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.MicroDeposit{}, err
	}
	if len(out.Items) == 0 {
		return entities.MicroDeposit{}, nil
	}

	var it microDepositItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.MicroDeposit{}, err
	}
	return fromMicroDepositItem(it), nil
}

func (r *MicroDepositDynamoRepository) ListByChangeOrderID(ctx context.Context, changeOrderID string) ([]entities.MicroDeposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsChangeOrderIDIndex),
		KeyConditionExpression: aws.String("change_order_id = :coid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":coid": &types.AttributeValueMemberS{Value: changeOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.MicroDeposit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it microDepositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMicroDepositItem(it))
	}
	return items, nil
}

func (r *MicroDepositDynamoRepository) Save(ctx context.Context, d entities.MicroDeposit) (entities.MicroDeposit, error) {
	av, err := attributevalue.MarshalMap(toMicroDepositItem(d))
	if err != nil {
		return entities.MicroDeposit{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.MicroDeposit{}, err
	}
	return d, nil
}

func toMicroDepositItem(d entities.MicroDeposit) microDepositItem {
	it := microDepositItem{
		ID:              d.ID,
		ChangeOrderID:   d.ChangeOrderID,
		Amount:          floatToString(d.Amount),
		Currency:        d.Currency,
		Status:          string(d.Status),
		PaymentMethod:   string(d.PaymentMethod),
		PaymentIntentID: d.PaymentIntentID,
		CreatedAt:       d.CreatedAt.UTC().Format(time.RFC3339Nano),
		FailedReason:    d.FailedReason,
		RefundReason:    d.RefundReason,
	}
	if d.PaidAt != nil {
		it.PaidAt = d.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	if d.FailedAt != nil {
		it.FailedAt = d.FailedAt.UTC().Format(time.RFC3339Nano)
	}
	if d.RefundedAt != nil {
		it.RefundedAt = d.RefundedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromMicroDepositItem(it microDepositItem) entities.MicroDeposit {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)

	d := entities.MicroDeposit{
		ID:              it.ID,
		ChangeOrderID:   it.ChangeOrderID,
		Amount:          amount,
		Currency:        it.Currency,
		Status:          entities.MicroDepositStatus(it.Status),
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		PaymentIntentID: it.PaymentIntentID,
		CreatedAt:       createdAt,
		FailedReason:    it.FailedReason,
		RefundReason:    it.RefundReason,
	}
	if it.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			d.PaidAt = &t
		}
	}
	if it.FailedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.FailedAt); err == nil {
			d.FailedAt = &t
		}
	}
	if it.RefundedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.RefundedAt); err == nil {
			d.RefundedAt = &t
		}
	}
	return d
}
