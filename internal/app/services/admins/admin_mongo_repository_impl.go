package admins

import (
	"context"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminMongoRepository struct {
	Collection *mongo.Collection
}

func NewAdminMongoRepository(db *mongo.Client, dbName string) contracts.AdminRepository {
	return &AdminMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdmins),
	}
}

func (r *AdminMongoRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (string, error) {
	_, err := r.Collection.InsertOne(ctx, admin)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return admin.ID, nil
}

func (r *AdminMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}
