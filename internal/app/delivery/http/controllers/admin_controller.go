package controllers

import (
	"context"
	"net/http"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/dto/requests"
	"bimar-service/internal/pkg/exceptions"
	"bimar-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// AdminController exposes the credentialing operations. Every route behind it
// is wrapped in the admin role check; the handlers themselves never trust a
// role field from the payload.
type AdminController struct {
	Log                  *zap.Logger
	CredentialingUsecase contracts.CredentialingUsecase
}

func NewAdminController(logger *zap.Logger, credentialingUsecase contracts.CredentialingUsecase) *AdminController {
	return &AdminController{
		Log:                  logger,
		CredentialingUsecase: credentialingUsecase,
	}
}

func (ctrl *AdminController) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterAdmin)
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

	if err := ctrl.CredentialingUsecase.RegisterAdmin(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseSuccess, nil)
}

func (ctrl *AdminController) ActivateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.CredentialingUsecase.Activate(ctx, doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorActivatedSuccess, nil)
}

func (ctrl *AdminController) RejectDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamDoctorID))
		return
	}

	request := new(requests.RejectDoctor)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.DoctorID = doctorID
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.CredentialingUsecase.Reject(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorRejectedSuccess, nil)
}

func (ctrl *AdminController) BanDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.CredentialingUsecase.Ban(ctx, doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorBannedSuccess, nil)
}

func (ctrl *AdminController) SuspendDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDRequired(nil, constvars.URLParamDoctorID))
		return
	}

	request := new(requests.SuspendDoctor)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.DoctorID = doctorID
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.CredentialingUsecase.Suspend(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorSuspendedSuccess, nil)
}

func (ctrl *AdminController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	doctors, err := ctrl.CredentialingUsecase.ListDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, doctors)
}

func (ctrl *AdminController) ListPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	patients, err := ctrl.CredentialingUsecase.ListPatients(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, patients)
}
