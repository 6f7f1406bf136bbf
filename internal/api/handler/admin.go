package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/admin"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
)

const (
	photoField          = "photo"
	multipartMemory     = 8 << 20
	multipartOverheadMB = 1
)

func AdminLogin(service admin.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		token, err := service.Login(r.Context(), &req)
		if err != nil {
			handleAdminError(w, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, domain.LoginResponse{Token: token})
	}
}

func GetAdminConfig(service admin.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		document, err := service.GetConfig(r.Context())
		if err != nil {
			handleAdminError(w, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, document)
	}
}

func UpdateAdminConfig(service admin.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição")
			return
		}

		if err := service.UpdateConfig(r.Context(), body); err != nil {
			handleAdminError(w, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, domain.StatusResponse{
			Status:  "success",
			Message: "Configuration updated successfully",
		})
	}
}

// UploadPhoto recebe a foto de um CDP no campo multipart "photo"
func UploadPhoto(service admin.Administrator, maxSizeMB int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, (maxSizeMB+multipartOverheadMB)<<20)

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo excede o tamanho máximo permitido")
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição multipart inválida")
			return
		}

		file, header, err := r.FormFile(photoField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo enviado no campo photo")
			return
		}
		defer file.Close()

		filename, err := service.SavePhoto(r.Context(), header.Filename, file)
		if err != nil {
			handleAdminError(w, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, domain.PhotoUploadResponse{
			Status:   "success",
			Filename: filename,
			Message:  "Photo " + filename + " uploaded successfully",
		})
	}
}

// handleAdminError traduz os erros do serviço de administração para respostas HTTP
func handleAdminError(w http.ResponseWriter, err error) {
	var adminErr *admin.AdminError
	if errors.As(err, &adminErr) {
		if apiErrors.StatusFor(adminErr.Code) >= http.StatusInternalServerError {
			logrus.WithError(err).Error("Erro na interface de administração")
		}
		apiErrors.WriteError(w, adminErr.Code, adminErr.Error())
		return
	}

	logrus.WithError(err).Error("Erro inesperado na interface de administração")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error())
}
