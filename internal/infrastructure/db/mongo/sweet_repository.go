package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

const collectionSweets = "sweets"

type SweetRepository struct {
	col *mongo.Collection
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{col: db.Collection(collectionSweets)}
}

type sweetDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Price       float64            `bson:"price"`
	Quantity    int                `bson:"quantity"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// Insert persists a new sweet document.
func (r *SweetRepository) Insert(ctx context.Context, sweet *domain.Sweet) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomain(sweet)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert sweet: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindAll returns every sweet, newest first.
func (r *SweetRepository) FindAll(ctx context.Context) ([]*domain.Sweet, error) {
	return r.find(ctx, bson.M{})
}

// FindByID retrieves a single sweet. A malformed id behaves like a missing
// document.
func (r *SweetRepository) FindByID(ctx context.Context, id string) (*domain.Sweet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sweetDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("find sweet: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByFilter applies the compound search filter: case-insensitive substring
// match on name, exact category, inclusive price range.
func (r *SweetRepository) FindByFilter(ctx context.Context, filter ports.SweetFilter) ([]*domain.Sweet, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return r.find(ctx, query)
}

// UpdateByID applies the patch as a single $set, so unspecified fields are
// preserved and no read-then-write window exists.
func (r *SweetRepository) UpdateByID(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}

	var doc sweetDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("update sweet: %w", err)
	}
	return doc.toDomain(), nil
}

// DeleteByID removes a sweet, reporting domain.ErrSweetNotFound when no
// document matched.
func (r *SweetRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSweetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

// AdjustQuantity changes the stock level by delta in one conditional update.
// For decrements the filter requires the current quantity to cover the amount,
// so two racing purchases can never push stock below zero.
func (r *SweetRepository) AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Sweet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSweetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	if delta < 0 {
		filter["quantity"] = bson.M{"$gte": -delta}
	}
	update := bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	var doc sweetDoc
	err = r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("adjust quantity: %w", err)
	}

	// No match: either the sweet is gone or the stock guard rejected the
	// decrement. Disambiguate with an existence check.
	if delta < 0 {
		if _, findErr := r.FindByID(ctx, id); findErr == nil {
			return nil, domain.ErrInsufficientStock
		}
	}
	return nil, domain.ErrSweetNotFound
}

// EnsureIndexes creates the indexes backing list and search queries.
func (r *SweetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *SweetRepository) find(ctx context.Context, query bson.M) ([]*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find sweets: %w", err)
	}
	defer cur.Close(ctx)

	var docs []sweetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sweets: %w", err)
	}

	sweets := make([]*domain.Sweet, len(docs))
	for i := range docs {
		sweets[i] = docs[i].toDomain()
	}
	return sweets, nil
}

func fromDomain(s *domain.Sweet) *sweetDoc {
	return &sweetDoc{
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (d *sweetDoc) toDomain() *domain.Sweet {
	return &domain.Sweet{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price,
		Quantity:    d.Quantity,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
