package repository

import (
	"context"
	"errors"
	"strconv"

	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMilestonesTableName = "milestones"

type milestoneItem struct {
	ProjectID     string `dynamodbav:"project_id"`
	MilestoneNo   int    `dynamodbav:"milestone_no"`
	Price         string `dynamodbav:"price"`
	Description   string `dynamodbav:"description"`
	StartDate     string `dynamodbav:"start_date,omitempty"`
	EstimatedEnd  string `dynamodbav:"estimated_end,omitempty"`
	Status        string `dynamodbav:"status"`
	BillingStatus string `dynamodbav:"billing_status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// MilestoneDynamoRepository persists ProjectMilestone entities in DynamoDB.
//
// Table requirements:
//   - PK: project_id (string)
//   - SK: milestone_no (number)
//
// The composite key carries the uniqueness half of the milestone-number
// invariant; contiguity is enforced by the usecase before CreateBatch.

type MilestoneDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMilestoneRepository = (*MilestoneDynamoRepository)(nil)

func NewMilestoneDynamoRepository(ddb *dynamodb.Client) *MilestoneDynamoRepository {
	return &MilestoneDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MILESTONES_TABLE", defaultMilestonesTableName),
	}
}

// CreateBatch writes the whole schedule in one TransactWriteItems call; any
// already-existing milestone number cancels the batch.
func (r *MilestoneDynamoRepository) CreateBatch(ctx context.Context, milestones []entities.ProjectMilestone) ([]entities.ProjectMilestone, error) {
	if len(milestones) == 0 {
		return nil, nil
	}

	writes := make([]types.TransactWriteItem, 0, len(milestones))
	for _, ms := range milestones {
		av, err := attributevalue.MarshalMap(toMilestoneItem(ms))
		if err != nil {
			return nil, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#pid)"),
				ExpressionAttributeNames: map[string]string{
					"#pid": "project_id",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return nil, nil
		}
		return nil, err
	}
	return milestones, nil
}

func (r *MilestoneDynamoRepository) GetByProjectAndNo(ctx context.Context, projectID string, milestoneNo int) (entities.ProjectMilestone, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_id":   &types.AttributeValueMemberS{Value: projectID},
			"milestone_no": &types.AttributeValueMemberN{Value: strconv.Itoa(milestoneNo)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProjectMilestone{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProjectMilestone{}, nil
	}

	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProjectMilestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func (r *MilestoneDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ProjectMilestone, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProjectMilestone, 0, len(out.Items))
	for _, raw := range out.Items {
		var it milestoneItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMilestoneItem(it))
	}
	return items, nil
}

func toMilestoneItem(ms entities.ProjectMilestone) milestoneItem {
	return milestoneItem{
		ProjectID:     ms.ProjectID,
		MilestoneNo:   ms.MilestoneNo,
		Price:         ms.Price.String(),
		Description:   ms.Description,
		StartDate:     formatTime(ms.StartDate),
		EstimatedEnd:  formatTime(ms.EstimatedEnd),
		Status:        string(ms.Status),
		BillingStatus: string(ms.BillingStatus),
		CreatedAt:     formatTime(ms.CreatedAt),
		UpdatedAt:     formatTime(ms.UpdatedAt),
	}
}

func fromMilestoneItem(it milestoneItem) entities.ProjectMilestone {
	return entities.ProjectMilestone{
		ProjectID:     it.ProjectID,
		MilestoneNo:   it.MilestoneNo,
		Price:         parseDecimal(it.Price),
		Description:   it.Description,
		StartDate:     parseTime(it.StartDate),
		EstimatedEnd:  parseTime(it.EstimatedEnd),
		Status:        entities.MilestoneStatus(it.Status),
		BillingStatus: entities.MilestoneBillingStatus(it.BillingStatus),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
