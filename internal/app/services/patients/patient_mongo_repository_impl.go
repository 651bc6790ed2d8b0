package patients

import (
	"context"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	_, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return patient.ID, nil
}

func (r *PatientMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"userEmail": email}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"_id": patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (r *PatientMongoRepository) ReplacePatient(ctx context.Context, patient *models.Patient) error {
	filter := bson.M{"_id": patient.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, patient, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// AppendEncounter pushes the encounter document in one write. The pushed
// document already carries the correct consultations presence, so there is
// never a moment where a stored encounter has the wrong shape.
func (r *PatientMongoRepository) AppendEncounter(ctx context.Context, patientID string, encounter *models.DiagnosisEncounter) (int64, error) {
	filter := bson.M{"_id": patientID}
	update := bson.M{"$push": bson.M{"diagnosis": encounter.ConvertToBsonM()}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *PatientMongoRepository) ReplacePrescription(ctx context.Context, prescriptionID string, prescription *models.Prescription) (int64, error) {
	filter := bson.M{"diagnosis.prescription.prescriptionId": prescriptionID}
	update := bson.M{"$set": bson.M{"diagnosis.$.prescription": prescription}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

// UnsetPrescription removes the prescription field from the encounter that
// holds the given id. A second call with the same id matches nothing.
func (r *PatientMongoRepository) UnsetPrescription(ctx context.Context, prescriptionID string) (int64, error) {
	filter := bson.M{"diagnosis.prescription.prescriptionId": prescriptionID}
	update := bson.M{"$unset": bson.M{"diagnosis.$.prescription": ""}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *PatientMongoRepository) ReplaceConsultation(ctx context.Context, consultationID string, consultation *models.Consultation) (int64, error) {
	filter := bson.M{"diagnosis": bson.M{"$elemMatch": bson.M{"consultations.consultationId": consultationID}}}
	update := bson.M{"$set": bson.M{"diagnosis.$[d].consultations.$[c]": consultation}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.consultations.consultationId": consultationID},
			bson.M{"c.consultationId": consultationID},
		},
	})

	result, err := r.Collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *PatientMongoRepository) RemoveConsultation(ctx context.Context, consultationID string) (int64, error) {
	filter := bson.M{"diagnosis": bson.M{"$elemMatch": bson.M{"consultations.consultationId": consultationID}}}
	update := bson.M{"$pull": bson.M{"diagnosis.$[d].consultations": bson.M{"consultationId": consultationID}}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.consultations.consultationId": consultationID},
		},
	})

	result, err := r.Collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *PatientMongoRepository) UpdateMedicalRecord(ctx context.Context, email string, record *models.MedicalRecord) (int64, error) {
	filter := bson.M{"userEmail": email}
	update := bson.M{"$set": bson.M{"medicalRecord": record}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}

func (r *PatientMongoRepository) UnsetMedicalRecord(ctx context.Context, email string) (int64, error) {
	filter := bson.M{"userEmail": email}
	update := bson.M{"$unset": bson.M{"medicalRecord": ""}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, nil
}
