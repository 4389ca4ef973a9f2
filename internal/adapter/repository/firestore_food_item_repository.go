package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shuddhify/internal/domain/entity"
	"shuddhify/internal/domain/repository"
	"shuddhify/pkg/errors"
)

const foodItemsCollection = "food_items"

type firestoreFoodItemRepository struct {
	client *firestore.Client
}

func NewFirestoreFoodItemRepository(client *firestore.Client) repository.FoodItemRepository {
	return &firestoreFoodItemRepository{
		client: client,
	}
}

func (r *firestoreFoodItemRepository) GetByID(ctx context.Context, id string) (*entity.FoodItem, error) {
	doc, err := r.client.Collection(foodItemsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Food item", err)
		}
		return nil, errors.Internal("Failed to get food item", err)
	}

	var item entity.FoodItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse food item data", err)
	}

	return &item, nil
}

func (r *firestoreFoodItemRepository) List(ctx context.Context, category string, limit, offset int) ([]*entity.FoodItem, int64, error) {
	query := r.client.Collection(foodItemsCollection).Query

	if category != "" {
		query = query.Where("category", "==", category)
	}

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list food items", err)
	}
	total := int64(len(countDocs))

	query = query.OrderBy("name", firestore.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var items []*entity.FoodItem

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to read food items", err)
		}

		var item entity.FoodItem
		if err := doc.DataTo(&item); err != nil {
			continue
		}
		items = append(items, &item)
	}

	return items, total, nil
}
