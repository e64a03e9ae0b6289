package repository

import (
	"context"
	"errors"

	"sapataria_xpto/internal/domain/entities"
	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPedidosTableName = "shoeRepairPedidos"

// PedidoDynamoRepository persists Pedido entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The entity carries dynamodbav tags, so items are marshaled straight from
// entities.Pedido (time.Time attributes are stored as RFC3339Nano strings,
// which keeps begins_with date filters working).

type PedidoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPedidoRepository = (*PedidoDynamoRepository)(nil)

func NewPedidoDynamoRepository(ddb *dynamodb.Client) *PedidoDynamoRepository {
	return &PedidoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DYNAMODB_PEDIDO_TABLE", defaultPedidosTableName),
	}
}

func (r *PedidoDynamoRepository) Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	av, err := attributevalue.MarshalMap(p)
	if err != nil {
		return entities.Pedido{}, err
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
		return entities.Pedido{}, err
	}
	return p, nil
}

func (r *PedidoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pedido, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pedido{}, nil
	}

	var p entities.Pedido
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return entities.Pedido{}, err
	}
	return p, nil
}

func (r *PedidoDynamoRepository) List(ctx context.Context) ([]entities.Pedido, error) {
	var pedidos []entities.Pedido

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []entities.Pedido
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		pedidos = append(pedidos, batch...)
	}
	if pedidos == nil {
		pedidos = []entities.Pedido{}
	}
	return pedidos, nil
}

func (r *PedidoDynamoRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (entities.Pedido, error) {
	var update expression.UpdateBuilder
	for k, v := range fields {
		update = update.Set(expression.Name(k), expression.Value(v))
	}
	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.Name("id").AttributeExists()).
		Build()
	if err != nil {
		return entities.Pedido{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Pedido{}, nil
		}
		return entities.Pedido{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Pedido{}, nil
	}

	var p entities.Pedido
	if err := attributevalue.UnmarshalMap(out.Attributes, &p); err != nil {
		return entities.Pedido{}, err
	}
	return p, nil
}

func (r *PedidoDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *PedidoDynamoRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("status").Equal(expression.Value(status))).
		Build()
	if err != nil {
		return 0, err
	}
	return r.count(ctx, expr)
}

func (r *PedidoDynamoRepository) CountByStatusAndDay(ctx context.Context, status, day string) (int, error) {
	filter := expression.Name("status").Equal(expression.Value(status)).
		And(expression.Name("updatedAt").BeginsWith(day))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return 0, err
	}
	return r.count(ctx, expr)
}

func (r *PedidoDynamoRepository) count(ctx context.Context, expr expression.Expression) (int, error) {
	total := 0
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Select:                    types.SelectCount,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}
