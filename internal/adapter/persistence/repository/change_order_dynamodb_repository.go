package repository

import (
	"context"
	"encoding/json"
	"time"

	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultChangeOrdersTableName = "change_orders"

type changeOrderItem struct {
	ID          string `dynamodbav:"id"`
	JobID       string `dynamodbav:"job_id"`
	ClientID    string `dynamodbav:"client_id"`
	Type        string `dynamodbav:"type"`
	Description string `dynamodbav:"description,omitempty"`
	RequestedBy string `dynamodbav:"requested_by"`
	RequestedAt string `dynamodbav:"requested_at"`
	Status      string `dynamodbav:"status"`

	// Details and CostImpact are stored as JSON documents so the typed
	// payload shapes can evolve without table migrations.
	Details    string `dynamodbav:"details"`
	CostImpact string `dynamodbav:"cost_impact,omitempty"`

	MicroDepositID string `dynamodbav:"micro_deposit_id,omitempty"`
	ApprovedAt     string `dynamodbav:"approved_at,omitempty"`
	ApprovedBy     string `dynamodbav:"approved_by,omitempty"`
	Reason         string `dynamodbav:"reason,omitempty"`
}

// ChangeOrderDynamoRepository persists ChangeOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ChangeOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeOrderRepository = (*ChangeOrderDynamoRepository)(nil)

func NewChangeOrderDynamoRepository(ddb *dynamodb.Client) *ChangeOrderDynamoRepository {
	return &ChangeOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_ORDERS_TABLE", defaultChangeOrdersTableName),
	}
}

func (r *ChangeOrderDynamoRepository) Create(ctx context.Context, o entities.ChangeOrder) (entities.ChangeOrder, error) {
	it, err := toChangeOrderItem(o)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChangeOrder{}, err
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
		return entities.ChangeOrder{}, err
	}
	return o, nil
}

func (r *ChangeOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it)
}

func (r *ChangeOrderDynamoRepository) Save(ctx context.Context, o entities.ChangeOrder) (entities.ChangeOrder, error) {
	it, err := toChangeOrderItem(o)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	return o, nil
}

func toChangeOrderItem(o entities.ChangeOrder) (changeOrderItem, error) {
	details, err := json.Marshal(o.Details)
	if err != nil {
		return changeOrderItem{}, err
	}

	it := changeOrderItem{
		ID:             o.ID,
		JobID:          o.JobID,
		ClientID:       o.ClientID,
		Type:           string(o.Type),
		Description:    o.Description,
		RequestedBy:    string(o.RequestedBy),
		RequestedAt:    o.RequestedAt.UTC().Format(time.RFC3339Nano),
		Status:         string(o.Status),
		Details:        string(details),
		MicroDepositID: o.MicroDepositID,
		ApprovedBy:     o.ApprovedBy,
		Reason:         o.Reason,
	}
	if o.CostImpact != nil {
		impact, err := json.Marshal(o.CostImpact)
		if err != nil {
			return changeOrderItem{}, err
		}
		it.CostImpact = string(impact)
	}
	if o.ApprovedAt != nil {
		it.ApprovedAt = o.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromChangeOrderItem(it changeOrderItem) (entities.ChangeOrder, error) {
	requestedAt, _ := time.Parse(time.RFC3339Nano, it.RequestedAt)

	o := entities.ChangeOrder{
		ID:             it.ID,
		JobID:          it.JobID,
		ClientID:       it.ClientID,
		Type:           entities.ChangeOrderType(it.Type),
		Description:    it.Description,
		RequestedBy:    entities.RequestedBy(it.RequestedBy),
		RequestedAt:    requestedAt,
		Status:         entities.ChangeOrderStatus(it.Status),
		MicroDepositID: it.MicroDepositID,
		ApprovedBy:     it.ApprovedBy,
		Reason:         it.Reason,
	}
	if it.Details != "" {
		if err := json.Unmarshal([]byte(it.Details), &o.Details); err != nil {
			return entities.ChangeOrder{}, err
		}
	}
	if it.CostImpact != "" {
		var impact entities.CostImpact
		if err := json.Unmarshal([]byte(it.CostImpact), &impact); err != nil {
			return entities.ChangeOrder{}, err
		}
		o.CostImpact = &impact
	}
	if it.ApprovedAt != "" {
		approvedAt, err := time.Parse(time.RFC3339Nano, it.ApprovedAt)
		if err == nil {
			o.ApprovedAt = &approvedAt
		}
	}
	return o, nil
}
