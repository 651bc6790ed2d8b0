package controllers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/delivery/http/middlewares"
	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/exceptions"
	"bimar-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DiagnosisController struct {
	Log              *zap.Logger
	DiagnosisUsecase contracts.DiagnosisUsecase
	Storage          contracts.StorageService
	MaxUploadSize    int64
}

func NewDiagnosisController(logger *zap.Logger, diagnosisUsecase contracts.DiagnosisUsecase, storage contracts.StorageService, maxUploadSizeInMB int64) *DiagnosisController {
	return &DiagnosisController{
		Log:              logger,
		DiagnosisUsecase: diagnosisUsecase,
		Storage:          storage,
		MaxUploadSize:    maxUploadSizeInMB << 20,
	}
}

// CreateEncounter accepts multipart form data so x-ray and lab result scans
// can ride along with the encounter fields. The followup query parameter
// decides whether the stored encounter carries the consultations field.
func (ctrl *DiagnosisController) CreateEncounter(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := r.ParseMultipartForm(ctrl.MaxUploadSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.CreateEncounter{
		DoctorName:    r.FormValue("doctorName"),
		DoctorPhone:   r.FormValue("doctorPhone"),
		Diagnosis:     r.MultipartForm.Value["diagnosis"],
		TreatmentPlan: r.FormValue("treatmentPlan"),
	}
	if raw := r.FormValue("consultations"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &request.Consultations); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	isFollowUp, _ := strconv.ParseBool(r.URL.Query().Get(constvars.URLQueryParamFollowUp))

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	xrayPaths, err := ctrl.uploadAll(ctx, r, constvars.MultipartFieldXray)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	labPaths, err := ctrl.uploadAll(ctx, r, constvars.MultipartFieldLabResults)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.XrayPaths = xrayPaths
	request.LabResultPaths = labPaths

	response, err := ctrl.DiagnosisUsecase.CreateEncounter(ctx, session, request, isFollowUp)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.EncounterCreatedSuccess, response)
}

func (ctrl *DiagnosisController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamPatientID))
		return
	}

	request := new(requests.CreatePrescriptionEncounter)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	response, err := ctrl.DiagnosisUsecase.CreatePrescriptionEncounter(ctx, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PrescriptionCreatedSuccess, response)
}

// GetEncounters returns the caller's diagnosis history. With ?followup=true
// only follow-up encounters are returned; with ?followup=false only standard
// ones. The split is decided purely by stored field presence.
func (ctrl *DiagnosisController) GetEncounters(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	encounters, err := ctrl.DiagnosisUsecase.GetEncounters(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if rawFilter := r.URL.Query().Get(constvars.URLQueryParamFollowUp); rawFilter != "" {
		followUpOnly, err := strconv.ParseBool(rawFilter)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
		filtered := make([]models.DiagnosisEncounter, 0, len(encounters))
		for _, encounter := range encounters {
			if encounter.IsFollowUp() == followUpOnly {
				filtered = append(filtered, encounter)
			}
		}
		encounters = filtered
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, encounters)
}

func (ctrl *DiagnosisController) UpdatePrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)
	if prescriptionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamPrescriptionID))
		return
	}

	request := new(requests.UpdatePrescription)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.DiagnosisUsecase.UpdatePrescription(ctx, prescriptionID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionUpdatedSuccess, nil)
}

func (ctrl *DiagnosisController) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)
	if prescriptionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamPrescriptionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.DiagnosisUsecase.DeletePrescription(ctx, prescriptionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionDeletedSuccess, nil)
}

func (ctrl *DiagnosisController) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)
	if consultationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamConsultationID))
		return
	}

	request := new(requests.UpdateConsultation)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.DiagnosisUsecase.UpdateConsultation(ctx, consultationID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationUpdatedSuccess, nil)
}

func (ctrl *DiagnosisController) DeleteConsultation(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)
	if consultationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamConsultationID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.DiagnosisUsecase.DeleteConsultation(ctx, consultationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationDeletedSuccess, nil)
}

func (ctrl *DiagnosisController) uploadAll(ctx context.Context, r *http.Request, field string) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	paths := make([]string, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		path, err := ctrl.storeFile(ctx, file, header)
		file.Close()
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (ctrl *DiagnosisController) storeFile(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), header.Filename)
	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	return ctrl.Storage.UploadObject(ctx, objectName, file, header.Size, contentType)
}
