package controllers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/app/delivery/http/middlewares"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/exceptions"
	"bimar-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const controllerTimeout = 10 * time.Second

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
	Storage       contracts.StorageService
	MaxUploadSize int64
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, storage contracts.StorageService, maxUploadSizeInMB int64) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
		Storage:       storage,
		MaxUploadSize: maxUploadSizeInMB << 20,
	}
}

// Register accepts multipart form data: scalar fields plus the syndicate
// card and certificate files, which are stored before the usecase runs.
func (ctrl *DoctorController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(ctrl.MaxUploadSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.RegisterDoctor{
		Name:        r.FormValue("doctorName"),
		Email:       r.FormValue("doctorEmail"),
		Password:    r.FormValue("doctorPassword"),
		Phone:       r.FormValue("doctorPhone"),
		DateOfBirth: r.FormValue("doctorDateOfBirth"),
		Field:       r.FormValue("field"),
		NationalID:  r.FormValue("nationalId"),
		SyndicateID: r.FormValue("syndicateId"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	cardPath, err := ctrl.uploadSingle(ctx, r, constvars.MultipartFieldSyndicateCard)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	certificatePaths, err := ctrl.uploadAll(ctx, r, constvars.MultipartFieldCertificates)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.SyndicateCardPath = cardPath
	request.CertificatePaths = certificatePaths

	response, err := ctrl.DoctorUsecase.Register(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorRegisteredSuccess, response)
}

func (ctrl *DoctorController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginDoctor)
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

	response, err := ctrl.DoctorUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *DoctorController) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.DoctorUsecase.Logout(ctx, session); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *DoctorController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ForgotPassword)
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

	if err := ctrl.DoctorUsecase.ForgotPassword(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ForgotPasswordSuccess, nil)
}

func (ctrl *DoctorController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VerifyOTP)
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

	if err := ctrl.DoctorUsecase.VerifyOTP(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyOTPSuccess, nil)
}

func (ctrl *DoctorController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResetPassword)
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

	if err := ctrl.DoctorUsecase.ResetPassword(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetPasswordSuccess, nil)
}

func (ctrl *DoctorController) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	doctor, err := ctrl.DoctorUsecase.GetProfile(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, doctor)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateDoctor)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Email = session.Email
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.DoctorUsecase.UpdateProfile(ctx, session, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorUpdatedSuccess, nil)
}

func (ctrl *DoctorController) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	request := &requests.DeleteDoctor{Email: session.Email}
	if err := ctrl.DoctorUsecase.Delete(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorDeletedSuccess, nil)
}

func (ctrl *DoctorController) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.ListActive(ctx, r.URL.Query().Get("field"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, doctors)
}

func (ctrl *DoctorController) AddClinic(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AddClinic)
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

	clinic, err := ctrl.DoctorUsecase.AddClinic(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ClinicAddedSuccess, clinic)
}

func (ctrl *DoctorController) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateClinic)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.DoctorEmail = session.Email
	request.ClinicID = chi.URLParam(r, constvars.URLParamClinicID)
	if request.ClinicID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamClinicID))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.DoctorUsecase.UpdateClinic(ctx, session, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClinicUpdatedSuccess, nil)
}

func (ctrl *DoctorController) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	if clinicID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamClinicID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	request := &requests.DeleteClinic{DoctorEmail: session.Email, ClinicID: clinicID}
	if err := ctrl.DoctorUsecase.DeleteClinic(ctx, session, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClinicDeletedSuccess, nil)
}

// RequestEdit returns the rejected application for review before resubmission.
// The route is sessionless; the usecase refuses any doctor whose status is not
// rejected, so the status gate is the only access control.
func (ctrl *DoctorController) RequestEdit(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	doctor, err := ctrl.DoctorUsecase.RequestEdit(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, doctor)
}

// Resubmit accepts multipart form data; status and rejection reason are not
// part of the request type, so nothing the caller sends can alter them.
func (ctrl *DoctorController) Resubmit(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamDoctorID))
		return
	}

	if err := r.ParseMultipartForm(ctrl.MaxUploadSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := new(requests.ResubmitDoctor)
	if v := r.FormValue("doctorName"); v != "" {
		request.Name = &v
	}
	if v := r.FormValue("doctorPhone"); v != "" {
		request.Phone = &v
	}
	if v := r.FormValue("doctorDateOfBirth"); v != "" {
		request.DateOfBirth = &v
	}
	if v := r.FormValue("field"); v != "" {
		request.Field = &v
	}
	if v := r.FormValue("nationalId"); v != "" {
		request.NationalID = &v
	}
	if v := r.FormValue("syndicateId"); v != "" {
		request.SyndicateID = &v
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if hasFile(r, constvars.MultipartFieldSyndicateCard) {
		cardPath, err := ctrl.uploadSingle(ctx, r, constvars.MultipartFieldSyndicateCard)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		request.SyndicateCardPath = cardPath
	}
	certificatePaths, err := ctrl.uploadAll(ctx, r, constvars.MultipartFieldCertificates)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.CertificatePaths = certificatePaths

	doctor, err := ctrl.DoctorUsecase.Resubmit(ctx, doctorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorResubmittedSuccess, doctor)
}

func (ctrl *DoctorController) uploadSingle(ctx context.Context, r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()
	return ctrl.storeFile(ctx, file, header)
}

func (ctrl *DoctorController) uploadAll(ctx context.Context, r *http.Request, field string) ([]string, error) {
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

func (ctrl *DoctorController) storeFile(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), header.Filename)
	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	return ctrl.Storage.UploadObject(ctx, objectName, file, header.Size, contentType)
}

func hasFile(r *http.Request, field string) bool {
	return r.MultipartForm != nil && len(r.MultipartForm.File[field]) > 0
}
