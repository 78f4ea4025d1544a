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
)

const (
	defaultPaymentsTableName = "payments"
	paymentsProjectIDIndex   = "project_id-index"
)

type proofOfPaymentItem struct {
	ID              string `dynamodbav:"id"`
	ProjectID       string `dynamodbav:"project_id"`
	RequesterID     string `dynamodbav:"requester_id"`
	ProofImageRef   string `dynamodbav:"proof_image_ref"`
	ReferenceNo     string `dynamodbav:"reference_no"`
	Amount          string `dynamodbav:"amount"`
	Category        string `dynamodbav:"category"`
	MilestoneNo     int    `dynamodbav:"milestone_no,omitempty"`
	BalanceSnapshot string `dynamodbav:"balance_snapshot"`
	Status          string `dynamodbav:"status"`
	SubmittedAt     string `dynamodbav:"submitted_at"`
	ResolvedAt      string `dynamodbav:"resolved_at,omitempty"`
}

// ProofOfPaymentDynamoRepository persists ProofOfPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type ProofOfPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProofOfPaymentRepository = (*ProofOfPaymentDynamoRepository)(nil)

func NewProofOfPaymentDynamoRepository(ddb *dynamodb.Client) *ProofOfPaymentDynamoRepository {
	return &ProofOfPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *ProofOfPaymentDynamoRepository) Create(ctx context.Context, p entities.ProofOfPayment) (entities.ProofOfPayment, error) {
	it := toProofOfPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProofOfPayment{}, err
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
		return entities.ProofOfPayment{}, err
	}
	return p, nil
}

func (r *ProofOfPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProofOfPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProofOfPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProofOfPayment{}, nil
	}

	var it proofOfPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProofOfPayment{}, err
	}
	return fromProofOfPaymentItem(it), nil
}

func (r *ProofOfPaymentDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ProofOfPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProofOfPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it proofOfPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProofOfPaymentItem(it))
	}
	return items, nil
}

func (r *ProofOfPaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ProofOfPaymentStatus) (entities.ProofOfPayment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :status, #resolved_at = :resolved_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":        &types.AttributeValueMemberS{Value: string(from)},
			":status":      &types.AttributeValueMemberS{Value: string(to)},
			":resolved_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#resolved_at": "resolved_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ProofOfPayment{}, nil
		}
		return entities.ProofOfPayment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ProofOfPayment{}, nil
	}
	var it proofOfPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ProofOfPayment{}, err
	}
	return fromProofOfPaymentItem(it), nil
}

func toProofOfPaymentItem(p entities.ProofOfPayment) proofOfPaymentItem {
	return proofOfPaymentItem{
		ID:              p.ID,
		ProjectID:       p.ProjectID,
		RequesterID:     p.RequesterID,
		ProofImageRef:   p.ProofImageRef,
		ReferenceNo:     p.ReferenceNo,
		Amount:          p.Amount.String(),
		Category:        string(p.Category),
		MilestoneNo:     p.MilestoneNo,
		BalanceSnapshot: p.BalanceSnapshot.String(),
		Status:          string(p.Status),
		SubmittedAt:     formatTime(p.SubmittedAt),
		ResolvedAt:      formatTime(p.ResolvedAt),
	}
}

func fromProofOfPaymentItem(it proofOfPaymentItem) entities.ProofOfPayment {
	return entities.ProofOfPayment{
		ID:              it.ID,
		ProjectID:       it.ProjectID,
		RequesterID:     it.RequesterID,
		ProofImageRef:   it.ProofImageRef,
		ReferenceNo:     it.ReferenceNo,
		Amount:          parseDecimal(it.Amount),
		Category:        entities.PaymentCategory(it.Category),
		MilestoneNo:     it.MilestoneNo,
		BalanceSnapshot: parseDecimal(it.BalanceSnapshot),
		Status:          entities.ProofOfPaymentStatus(it.Status),
		SubmittedAt:     parseTime(it.SubmittedAt),
		ResolvedAt:      parseTime(it.ResolvedAt),
	}
}
