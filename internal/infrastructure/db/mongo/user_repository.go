package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
)

const (
	usersCollection    = "users"
	statusesCollection = "statuses"

	queryTimeout = 5 * time.Second
)

type UserRepository struct {
	users    *mongo.Collection
	statuses *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users:    db.Collection(usersCollection),
		statuses: db.Collection(statusesCollection),
	}
}

type userDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	FirstName        string             `bson:"first_name"`
	LastName         string             `bson:"last_name"`
	CompanyName      string             `bson:"company_name"`
	PhoneNumber      string             `bson:"phone_number,omitempty"`
	Title            string             `bson:"title,omitempty"`
	Email            string             `bson:"email"`
	PasswordHash     string             `bson:"password_hash,omitempty"`
	IsSuper          bool               `bson:"is_super"`
	IsAdmin          bool               `bson:"is_admin"`
	IsUser           bool               `bson:"is_user"`
	IsActive         bool               `bson:"is_active"`
	IsActivated      bool               `bson:"is_activated"`
	ActivationCode   string             `bson:"activation_code,omitempty"`
	ActivationExpiry int64              `bson:"activation_expiry,omitempty"`
	RoleIDs          []string           `bson:"roles"`
	StatusID         string             `bson:"status_id,omitempty"`
	CreatedAt        int64              `bson:"created_at"`
	UpdatedAt        int64              `bson:"updated_at"`
}

type statusDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	UserID               string             `bson:"user_id"`
	ProfileCompleted     bool               `bson:"profile_completed"`
	CompanyVerified      bool               `bson:"company_verified"`
	ApplicationSubmitted bool               `bson:"application_submitted"`
	CreatedAt            int64              `bson:"created_at"`
	UpdatedAt            int64              `bson:"updated_at"`
}

// Create inserts the identity and its initial status record. The unique
// indexes on email and company_name are the authority on uniqueness; a
// duplicate-key error becomes a domain.ConflictError. If the status insert
// fails the identity is removed again so no half-created record survives.
func (r *UserRepository) Create(ctx context.Context, user *domain.User, status *domain.Status) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	doc := toUserDoc(user)
	res, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateConflict(err, user)
		}
		return nil, mapStoreErr(fmt.Errorf("insert user: %w", err))
	}
	userID := res.InsertedID.(primitive.ObjectID)

	sdoc := statusDoc{
		UserID:               userID.Hex(),
		ProfileCompleted:     status.ProfileCompleted,
		CompanyVerified:      status.CompanyVerified,
		ApplicationSubmitted: status.ApplicationSubmitted,
		CreatedAt:            status.CreatedAt.Unix(),
		UpdatedAt:            status.UpdatedAt.Unix(),
	}
	sres, err := r.statuses.InsertOne(ctx, sdoc)
	if err != nil {
		// Roll the identity back so the failure is atomic for the caller.
		_, _ = r.users.DeleteOne(ctx, bson.M{"_id": userID})
		return nil, mapStoreErr(fmt.Errorf("insert status: %w", err))
	}
	statusID := sres.InsertedID.(primitive.ObjectID).Hex()

	if _, err := r.users.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"status_id": statusID}}); err != nil {
		_, _ = r.statuses.DeleteOne(ctx, bson.M{"_id": sres.InsertedID})
		_, _ = r.users.DeleteOne(ctx, bson.M{"_id": userID})
		return nil, mapStoreErr(fmt.Errorf("link status: %w", err))
	}

	created := *user
	created.ID = userID.Hex()
	created.StatusID = statusID
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByCompanyName(ctx context.Context, name string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"company_name": name})
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	user.UpdatedAt = time.Now().UTC()
	doc := toUserDoc(user)
	doc.ID = oid
	res, err := r.users.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateConflict(err, user)
		}
		return mapStoreErr(fmt.Errorf("save user: %w", err))
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, mapStoreErr(fmt.Errorf("list users: %w", err))
	}
	defer cur.Close(ctx)

	var out []domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, *fromUserDoc(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, mapStoreErr(fmt.Errorf("list users: %w", err))
	}
	return out, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc userDoc
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, mapStoreErr(fmt.Errorf("find user: %w", err))
	}
	return fromUserDoc(&doc), nil
}

func toUserDoc(user *domain.User) userDoc {
	doc := userDoc{
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		CompanyName:    user.CompanyName,
		PhoneNumber:    user.PhoneNumber,
		Title:          user.Title,
		Email:          user.Email,
		PasswordHash:   user.PasswordHash,
		IsSuper:        user.IsSuper,
		IsAdmin:        user.IsAdmin,
		IsUser:         user.IsUser,
		IsActive:       user.IsActive,
		IsActivated:    user.IsActivated,
		ActivationCode: user.ActivationCode,
		RoleIDs:        user.RoleIDs,
		StatusID:       user.StatusID,
		CreatedAt:      user.CreatedAt.Unix(),
		UpdatedAt:      user.UpdatedAt.Unix(),
	}
	if !user.ActivationExpiry.IsZero() {
		doc.ActivationExpiry = user.ActivationExpiry.Unix()
	}
	return doc
}

func fromUserDoc(doc *userDoc) *domain.User {
	return &domain.User{
		ID:               doc.ID.Hex(),
		FirstName:        doc.FirstName,
		LastName:         doc.LastName,
		CompanyName:      doc.CompanyName,
		PhoneNumber:      doc.PhoneNumber,
		Title:            doc.Title,
		Email:            doc.Email,
		PasswordHash:     doc.PasswordHash,
		IsSuper:          doc.IsSuper,
		IsAdmin:          doc.IsAdmin,
		IsUser:           doc.IsUser,
		IsActive:         doc.IsActive,
		IsActivated:      doc.IsActivated,
		ActivationCode:   doc.ActivationCode,
		ActivationExpiry: unixToTime(doc.ActivationExpiry),
		RoleIDs:          doc.RoleIDs,
		StatusID:         doc.StatusID,
		CreatedAt:        unixToTime(doc.CreatedAt),
		UpdatedAt:        unixToTime(doc.UpdatedAt),
	}
}

// duplicateConflict inspects a duplicate-key error to decide which unique
// field tripped. The index name appears in the server message.
func duplicateConflict(err error, user *domain.User) error {
	if strings.Contains(err.Error(), "company_name") {
		return &domain.ConflictError{Field: "company name", Value: user.CompanyName}
	}
	return &domain.ConflictError{Field: "email", Value: user.Email}
}

// mapStoreErr converts deadline expiry into the timeout sentinel so callers
// get a 503 instead of a hang-shaped 500.
func mapStoreErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return fmt.Errorf("%w: %v", domain.ErrStoreTimeout, err)
	}
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
