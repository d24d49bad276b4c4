package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"floorcraft/internal/domain/entities"
	"floorcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName  = "projects"
	projectsContractorIDIndex = "contractor_id-index"
)

type installmentItem struct {
	Amount        string `dynamodbav:"amount"`
	Paid          bool   `dynamodbav:"paid"`
	PaidDate      string `dynamodbav:"paid_date,omitempty"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
}

type roomItem struct {
	Name   string `dynamodbav:"name"`
	Length string `dynamodbav:"length"`
	Width  string `dynamodbav:"width"`
}

type projectItem struct {
	ID           string `dynamodbav:"id"`
	ContractorID string `dynamodbav:"contractor_id"`
	CustomerName string `dynamodbav:"customer_name"`

	FloorType  string `dynamodbav:"floor_type,omitempty"`
	FloorSize  string `dynamodbav:"floor_size,omitempty"`
	FinishType string `dynamodbav:"finish_type,omitempty"`
	StainType  string `dynamodbav:"stain_type,omitempty"`

	Rooms  []roomItem `dynamodbav:"rooms,omitempty"`
	Treads int        `dynamodbav:"treads"`
	Risers int        `dynamodbav:"risers"`

	PricePerSqFt    string `dynamodbav:"price_per_sq_ft"`
	TotalSquareFeet string `dynamodbav:"total_square_feet"`
	EstimatedCost   string `dynamodbav:"estimated_cost"`

	Status   string `dynamodbav:"status"`
	Schedule string `dynamodbav:"payment_schedule"`

	Deposit  installmentItem `dynamodbav:"deposit"`
	Progress installmentItem `dynamodbav:"progress"`
	Final    installmentItem `dynamodbav:"final"`

	TotalPaid  string `dynamodbav:"total_paid"`
	BalanceDue string `dynamodbav:"balance_due"`

	CustomerSignature   string `dynamodbav:"customer_signature,omitempty"`
	CustomerSignedAt    string `dynamodbav:"customer_signed_at,omitempty"`
	ContractorSignature string `dynamodbav:"contractor_signature,omitempty"`
	ContractorSignedAt  string `dynamodbav:"contractor_signed_at,omitempty"`

	SendCount int    `dynamodbav:"send_count"`
	SentAt    string `dynamodbav:"sent_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contractor_id-index (PK: contractor_id)
//
// Signature attributes are written with attribute_not_exists conditions so
// the single-use guard holds under concurrent submissions; everything else
// is an unconditional full-item write of the recomputed aggregate.
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsContractorIDIndex),
		KeyConditionExpression: aws.String("contractor_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractorID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProjectItem(it))
	}
	return items, nil
}

func (r *ProjectDynamoRepository) Save(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

// SetSignature writes the signature with a conditional update: the item must
// exist and the party's slot must be empty. A lost race returns a zero
// Project rather than overwriting the stored signature.
func (r *ProjectDynamoRepository) SetSignature(ctx context.Context, id string, party entities.SignatureParty, blob string, signedAt time.Time) (entities.Project, error) {
	sigAttr := "customer_signature"
	atAttr := "customer_signed_at"
	if party == entities.PartyContractor {
		sigAttr = "contractor_signature"
		atAttr = "contractor_signed_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#sig)"),
		UpdateExpression:    aws.String("SET #sig = :sig, #signed_at = :signed_at, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#sig":        sigAttr,
			"#signed_at":  atAttr,
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sig":        &types.AttributeValueMemberS{Value: blob},
			":signed_at":  &types.AttributeValueMemberS{Value: signedAt.UTC().Format(time.RFC3339Nano)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	rooms := make([]roomItem, 0, len(p.Rooms))
	for _, room := range p.Rooms {
		rooms = append(rooms, roomItem{
			Name:   room.Name,
			Length: floatToString(room.Length),
			Width:  floatToString(room.Width),
		})
	}

	return projectItem{
		ID:           p.ID,
		ContractorID: p.ContractorID,
		CustomerName: p.CustomerName,

		FloorType:  p.Specs.FloorType,
		FloorSize:  p.Specs.FloorSize,
		FinishType: p.Specs.FinishType,
		StainType:  p.Specs.StainType,

		Rooms:  rooms,
		Treads: p.Stairs.Treads,
		Risers: p.Stairs.Risers,

		PricePerSqFt:    floatToString(p.PricePerSqFt),
		TotalSquareFeet: floatToString(p.TotalSquareFeet),
		EstimatedCost:   floatToString(p.EstimatedCost),

		Status:   string(p.Status),
		Schedule: string(p.Schedule),

		Deposit:  toInstallmentItem(p.Deposit),
		Progress: toInstallmentItem(p.Progress),
		Final:    toInstallmentItem(p.Final),

		TotalPaid:  floatToString(p.TotalPaid),
		BalanceDue: floatToString(p.BalanceDue),

		CustomerSignature:   p.CustomerSignature,
		CustomerSignedAt:    timeToString(p.CustomerSignedAt),
		ContractorSignature: p.ContractorSignature,
		ContractorSignedAt:  timeToString(p.ContractorSignedAt),

		SendCount: p.SendCount,
		SentAt:    timeToString(p.SentAt),

		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	rooms := make([]entities.RoomMeasurement, 0, len(it.Rooms))
	for _, room := range it.Rooms {
		length, _ := strconv.ParseFloat(room.Length, 64)
		width, _ := strconv.ParseFloat(room.Width, 64)
		rooms = append(rooms, entities.RoomMeasurement{Name: room.Name, Length: length, Width: width})
	}
	if len(rooms) == 0 {
		rooms = nil
	}

	pricePerSqFt, _ := strconv.ParseFloat(it.PricePerSqFt, 64)
	totalSquareFeet, _ := strconv.ParseFloat(it.TotalSquareFeet, 64)
	estimatedCost, _ := strconv.ParseFloat(it.EstimatedCost, 64)
	totalPaid, _ := strconv.ParseFloat(it.TotalPaid, 64)
	balanceDue, _ := strconv.ParseFloat(it.BalanceDue, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Project{
		ID:           it.ID,
		ContractorID: it.ContractorID,
		CustomerName: it.CustomerName,

		Specs: entities.FloorSpecs{
			FloorType:  it.FloorType,
			FloorSize:  it.FloorSize,
			FinishType: it.FinishType,
			StainType:  it.StainType,
		},

		Rooms:  rooms,
		Stairs: entities.StairMeasurement{Treads: it.Treads, Risers: it.Risers},

		PricePerSqFt:    pricePerSqFt,
		TotalSquareFeet: totalSquareFeet,
		EstimatedCost:   estimatedCost,

		Status:   entities.ProjectStatus(it.Status),
		Schedule: entities.SchedulePolicy(it.Schedule),

		Deposit:  fromInstallmentItem(it.Deposit),
		Progress: fromInstallmentItem(it.Progress),
		Final:    fromInstallmentItem(it.Final),

		TotalPaid:  totalPaid,
		BalanceDue: balanceDue,

		CustomerSignature:   it.CustomerSignature,
		CustomerSignedAt:    timeFromString(it.CustomerSignedAt),
		ContractorSignature: it.ContractorSignature,
		ContractorSignedAt:  timeFromString(it.ContractorSignedAt),

		SendCount: it.SendCount,
		SentAt:    timeFromString(it.SentAt),

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func toInstallmentItem(inst entities.Installment) installmentItem {
	it := installmentItem{
		Amount:        floatToString(inst.Amount),
		Paid:          inst.Paid,
		PaymentMethod: inst.PaymentMethod,
	}
	if inst.PaidDate != nil {
		it.PaidDate = inst.PaidDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Installment{
		Amount:        amount,
		Paid:          it.Paid,
		PaidDate:      timeFromString(it.PaidDate),
		PaymentMethod: it.PaymentMethod,
	}
}

func timeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromString(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
