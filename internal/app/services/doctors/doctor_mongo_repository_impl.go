package doctors

import (
	"context"
	"time"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	_, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return doctor.ID, nil
}

func (r *DoctorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"doctorEmail": email}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindAllByStatus(ctx context.Context, status models.DoctorStatus) ([]models.Doctor, error) {
	return r.findAll(ctx, bson.M{"status": status})
}

func (r *DoctorMongoRepository) FindAllByStatusAndField(ctx context.Context, status models.DoctorStatus, field string) ([]models.Doctor, error) {
	return r.findAll(ctx, bson.M{"status": status, "field": field})
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *DoctorMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (r *DoctorMongoRepository) UpdateFields(ctx context.Context, email string, fields map[string]interface{}) (int64, error) {
	set := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		set[key] = value
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"doctorEmail": email}, bson.M{"$set": set})
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *DoctorMongoRepository) UpdatePassword(ctx context.Context, email string, hashedPassword string) (int64, error) {
	update := bson.M{"$set": bson.M{"doctorPassword": hashedPassword, "updatedAt": time.Now()}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"doctorEmail": email}, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *DoctorMongoRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"doctorEmail": email})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *DoctorMongoRepository) UpdateStatus(ctx context.Context, doctorID string, status models.DoctorStatus) (int64, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": doctorID}, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *DoctorMongoRepository) UpdateStatusWithRejection(ctx context.Context, doctorID string, status models.DoctorStatus, rejectionReason string) (int64, error) {
	update := bson.M{"$set": bson.M{
		"status":          status,
		"rejectionReason": rejectionReason,
		"updatedAt":       time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": doctorID}, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *DoctorMongoRepository) UpdateStatusWithSuspension(ctx context.Context, doctorID string, status models.DoctorStatus, details *models.SuspensionDetails) (int64, error) {
	update := bson.M{"$set": bson.M{
		"status":            status,
		"suspensionDetails": details,
		"updatedAt":         time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": doctorID}, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

// ResubmitApplication rewrites the resubmitted fields, forces the status back
// to pending and drops the rejection reason in a single write.
func (r *DoctorMongoRepository) ResubmitApplication(ctx context.Context, doctorID string, fields map[string]interface{}) (int64, error) {
	set := bson.M{
		"status":    models.DoctorStatusPending,
		"updatedAt": time.Now(),
	}
	for key, value := range fields {
		set[key] = value
	}
	update := bson.M{
		"$set":   set,
		"$unset": bson.M{"rejectionReason": ""},
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": doctorID}, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *DoctorMongoRepository) AddClinic(ctx context.Context, doctorEmail string, clinic *models.Clinic) (int64, error) {
	update := bson.M{"$push": bson.M{"clinic": clinic}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"doctorEmail": doctorEmail}, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

// UpdateClinic is scoped to the owning doctor so one doctor can never touch
// another doctor's clinic through a guessed id.
func (r *DoctorMongoRepository) UpdateClinic(ctx context.Context, doctorEmail, clinicID string, fields map[string]interface{}) (int64, error) {
	filter := bson.M{
		"doctorEmail":     doctorEmail,
		"clinic.clinicId": clinicID,
	}
	set := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		set["clinic.$."+key] = value
	}

	result, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": set}, options.Update().SetUpsert(false))
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *DoctorMongoRepository) RemoveClinic(ctx context.Context, doctorEmail, clinicID string) (int64, error) {
	filter := bson.M{
		"doctorEmail":     doctorEmail,
		"clinic.clinicId": clinicID,
	}
	update := bson.M{"$pull": bson.M{"clinic": bson.M{"clinicId": clinicID}}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}
