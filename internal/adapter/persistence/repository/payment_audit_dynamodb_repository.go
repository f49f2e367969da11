package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentAuditTable = "payment_audit"
	paymentAuditOwnerIndex   = "owner_id-index"
)

// dynamoAPI is the subset of *dynamodb.Client used here.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type paymentAuditItem struct {
	ID           string                 `dynamodbav:"id"`
	EventType    string                 `dynamodbav:"event_type"`
	OwnerID      string                 `dynamodbav:"owner_id,omitempty"`
	Status       string                 `dynamodbav:"status"`
	Outcome      string                 `dynamodbav:"outcome"`
	Date         string                 `dynamodbav:"date"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentAuditDynamoRepository stores the provider view of every evaluated
// payment.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Save overwrites unless the stored outcome is credited or plan_activated, so
// a later refund or redelivery cannot erase the fact that a ledger changed.
type PaymentAuditDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentAuditRepository = (*PaymentAuditDynamoRepository)(nil)

func NewPaymentAuditDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentAuditDynamoRepository {
	return newPaymentAuditRepository(ddb, tableName)
}

func newPaymentAuditRepository(ddb dynamoAPI, tableName string) *PaymentAuditDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentAuditTable
	}
	return &PaymentAuditDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentAuditDynamoRepository) Save(ctx context.Context, rec entities.PaymentAuditRecord) error {
	av, err := attributevalue.MarshalMap(toPaymentAuditItem(rec))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id) OR NOT (#outcome IN (:credited, :plan_activated))"),
		ExpressionAttributeNames: map[string]string{
			"#outcome": "outcome",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":credited":       &types.AttributeValueMemberS{Value: string(entities.OutcomeCredited)},
			":plan_activated": &types.AttributeValueMemberS{Value: string(entities.OutcomePlanActivated)},
		},
	})
	var kept *types.ConditionalCheckFailedException
	if errors.As(err, &kept) {
		return nil
	}
	return err
}

func (r *PaymentAuditDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentAuditRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentAuditRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentAuditRecord{}, nil
	}

	var it paymentAuditItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentAuditRecord{}, err
	}
	return fromPaymentAuditItem(it), nil
}

func (r *PaymentAuditDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.PaymentAuditRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentAuditOwnerIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentAuditRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentAuditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentAuditItem(it))
	}
	return items, nil
}

func toPaymentAuditItem(rec entities.PaymentAuditRecord) paymentAuditItem {
	it := paymentAuditItem{
		ID:        rec.ID,
		EventType: string(rec.EventType),
		OwnerID:   rec.OwnerID,
		Status:    string(rec.Status),
		Outcome:   string(rec.Outcome),
		Date:      rec.Date.UTC().Format(time.RFC3339Nano),
	}
	if len(rec.MPPayloadRaw) > 0 {
		it.MPPayloadRaw = string(rec.MPPayloadRaw)
		var payload map[string]interface{}
		if err := json.Unmarshal(rec.MPPayloadRaw, &payload); err == nil {
			it.MPPayload = payload
		}
	}
	return it
}

func fromPaymentAuditItem(it paymentAuditItem) entities.PaymentAuditRecord {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	rec := entities.PaymentAuditRecord{
		ID:        it.ID,
		EventType: entities.NotificationKind(it.EventType),
		OwnerID:   it.OwnerID,
		Status:    entities.PaymentStatus(it.Status),
		Outcome:   entities.ReconciliationOutcome(it.Outcome),
		Date:      dt,
	}
	if it.MPPayloadRaw != "" {
		rec.MPPayloadRaw = json.RawMessage(it.MPPayloadRaw)
	}
	return rec
}
