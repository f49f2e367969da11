package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"certifica_condo/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items in memory keyed by id.
type fakeDynamo struct {
	items     map[string]map[string]types.AttributeValue
	lastQuery *dynamodb.QueryInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

// PutItem honours the "outcome not in values" condition used by Save.
func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	if existing, ok := f.items[id]; ok && in.ConditionExpression != nil {
		stored, _ := existing[in.ExpressionAttributeNames["#outcome"]].(*types.AttributeValueMemberS)
		for _, v := range in.ExpressionAttributeValues {
			if s, ok := v.(*types.AttributeValueMemberS); ok && stored != nil && s.Value == stored.Value {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
			}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	owner := in.ExpressionAttributeValues[":oid"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, it := range f.items {
		if v, ok := it["owner_id"].(*types.AttributeValueMemberS); ok && v.Value == owner {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func TestPaymentAuditRepository_SaveAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := newPaymentAuditRepository(ddb, "")
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	rec := entities.PaymentAuditRecord{
		ID:           "123",
		EventType:    entities.NotificationKindPayment,
		OwnerID:      "emp-1",
		Status:       entities.PaymentStatusApproved,
		Outcome:      entities.OutcomeCredited,
		Date:         now,
		MPPayloadRaw: json.RawMessage(`{"id":123,"status":"approved"}`),
	}
	if err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Outcome != entities.OutcomeCredited || got.OwnerID != "emp-1" || !got.Date.Equal(now) {
		t.Fatalf("unexpected record: %+v", got)
	}
	if string(got.MPPayloadRaw) != `{"id":123,"status":"approved"}` {
		t.Fatalf("unexpected payload: %s", got.MPPayloadRaw)
	}
	if _, ok := ddb.items["123"]["mp_payload"]; !ok {
		t.Fatalf("expected structured payload attribute")
	}
}

func TestPaymentAuditRepository_GetMissing(t *testing.T) {
	repo := newPaymentAuditRepository(newFakeDynamo(), "audit")
	got, err := repo.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero record, got %+v", got)
	}
}

func TestPaymentAuditRepository_ListByOwnerUsesIndex(t *testing.T) {
	ddb := newFakeDynamo()
	repo := newPaymentAuditRepository(ddb, "audit")
	ctx := context.Background()
	_ = repo.Save(ctx, entities.PaymentAuditRecord{ID: "1", OwnerID: "cond-1", Outcome: entities.OutcomePlanActivated, Date: time.Now()})
	_ = repo.Save(ctx, entities.PaymentAuditRecord{ID: "2", OwnerID: "emp-9", Outcome: entities.OutcomeCredited, Date: time.Now()})

	got, err := repo.ListByOwner(ctx, "cond-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected records: %+v", got)
	}
	if aws.ToString(ddb.lastQuery.IndexName) != "owner_id-index" || aws.ToString(ddb.lastQuery.TableName) != "audit" {
		t.Fatalf("unexpected query: %+v", ddb.lastQuery)
	}
}

func TestPaymentAuditRepository_AppliedOutcomeIsKept(t *testing.T) {
	ddb := newFakeDynamo()
	repo := newPaymentAuditRepository(ddb, "audit")
	ctx := context.Background()
	day := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	if err := repo.Save(ctx, entities.PaymentAuditRecord{ID: "123", OwnerID: "emp-1", Status: entities.PaymentStatusPending, Outcome: entities.OutcomeNotApproved, Date: day}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, entities.PaymentAuditRecord{ID: "123", OwnerID: "emp-1", Status: entities.PaymentStatusApproved, Outcome: entities.OutcomeCredited, Date: day.Add(time.Minute)}); err != nil {
		t.Fatalf("pending record must be replaced, got %v", err)
	}

	for _, later := range []entities.PaymentAuditRecord{
		{ID: "123", Status: entities.PaymentStatusRefunded, Outcome: entities.OutcomeNotApproved, Date: day.Add(time.Hour)},
		{ID: "123", OwnerID: "emp-1", Status: entities.PaymentStatusApproved, Outcome: entities.OutcomeDuplicate, Date: day.Add(2 * time.Hour)},
	} {
		if err := repo.Save(ctx, later); err != nil {
			t.Fatalf("save over an applied outcome must not error, got %v", err)
		}
	}

	got, err := repo.GetByID(ctx, "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Outcome != entities.OutcomeCredited || got.OwnerID != "emp-1" || !got.Date.Equal(day.Add(time.Minute)) {
		t.Fatalf("credited record was replaced: %+v", got)
	}
	list, _ := repo.ListByOwner(ctx, "emp-1")
	if len(list) != 1 {
		t.Fatalf("payment must stay on the owner index, got %+v", list)
	}
}
