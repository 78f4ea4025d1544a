package repository

import (
	"context"
	"errors"
	"time"

	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationsRequesterIDIndex = "requester_id-index"
)

type quotationItem struct {
	ID                  string   `dynamodbav:"id"`
	RequesterID         string   `dynamodbav:"requester_id"`
	BuildingType        string   `dynamodbav:"building_type"`
	EstablishmentWidth  float64  `dynamodbav:"establishment_width"`
	EstablishmentHeight float64  `dynamodbav:"establishment_height"`
	Features            []string `dynamodbav:"features,omitempty"`
	FloorPlanRef        string   `dynamodbav:"floor_plan_ref,omitempty"`
	Status              string   `dynamodbav:"status"`
	MaterialsCost       string   `dynamodbav:"materials_cost,omitempty"`
	LaborCost           string   `dynamodbav:"labor_cost,omitempty"`
	RequirementsCost    string   `dynamodbav:"requirements_cost,omitempty"`
	QuotationDocRef     string   `dynamodbav:"quotation_doc_ref,omitempty"`
	CreatedAt           string   `dynamodbav:"created_at"`
	UpdatedAt           string   `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: requester_id-index (PK: requester_id)
//
// Status writes are conditioned on the currently persisted status so a stale
// caller loses the race instead of overwriting a newer state.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByRequesterID(ctx context.Context, requesterID string) ([]entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsRequesterIDIndex),
		KeyConditionExpression: aws.String("requester_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requesterID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quotation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuotationStatus) (entities.Quotation, error) {
	return r.update(ctx, id, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuotationDynamoRepository) SetPricing(ctx context.Context, id string, materials, labor, requirements decimal.Decimal, quotationDocRef string, from, to entities.QuotationStatus) (entities.Quotation, error) {
	return r.update(ctx, id, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #materials = :materials, #labor = :labor, #requirements = :requirements, #doc_ref = :doc_ref, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(to)},
			":materials":    &types.AttributeValueMemberS{Value: materials.String()},
			":labor":        &types.AttributeValueMemberS{Value: labor.String()},
			":requirements": &types.AttributeValueMemberS{Value: requirements.String()},
			":doc_ref":      &types.AttributeValueMemberS{Value: quotationDocRef},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":       "status",
			"#materials":    "materials_cost",
			"#labor":        "labor_cost",
			"#requirements": "requirements_cost",
			"#doc_ref":      "quotation_doc_ref",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuotationDynamoRepository) update(
	ctx context.Context,
	id string,
	from entities.QuotationStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	values[":from"] = &types.AttributeValueMemberS{Value: string(from)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ID:                  q.ID,
		RequesterID:         q.RequesterID,
		BuildingType:        q.BuildingType,
		EstablishmentWidth:  q.EstablishmentWidth,
		EstablishmentHeight: q.EstablishmentHeight,
		Features:            q.Features,
		FloorPlanRef:        q.FloorPlanRef,
		Status:              string(q.Status),
		MaterialsCost:       nullDecimalString(q.MaterialsCost),
		LaborCost:           nullDecimalString(q.LaborCost),
		RequirementsCost:    nullDecimalString(q.RequirementsCost),
		QuotationDocRef:     q.QuotationDocRef,
		CreatedAt:           formatTime(q.CreatedAt),
		UpdatedAt:           formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	return entities.Quotation{
		ID:                  it.ID,
		RequesterID:         it.RequesterID,
		BuildingType:        it.BuildingType,
		EstablishmentWidth:  it.EstablishmentWidth,
		EstablishmentHeight: it.EstablishmentHeight,
		Features:            it.Features,
		FloorPlanRef:        it.FloorPlanRef,
		Status:              entities.QuotationStatus(it.Status),
		MaterialsCost:       parseNullDecimal(it.MaterialsCost),
		LaborCost:           parseNullDecimal(it.LaborCost),
		RequirementsCost:    parseNullDecimal(it.RequirementsCost),
		QuotationDocRef:     it.QuotationDocRef,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
