package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/infofatec/alertboard/internal/alertboard/model"
	"github.com/infofatec/alertboard/internal/alertboard/service"
)

func (api *Api) ListAlerts(c *gin.Context) {
	alerts, err := api.svc.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("ListAlerts: store read failed")
		writeError(c, err)
		return
	}
	if alerts == nil {
		alerts = []*model.Alert{}
	}
	c.JSON(http.StatusOK, alerts)
}

func (api *Api) CreateAlert(c *gin.Context) {
	text := c.PostForm("text")
	image, err := readImagePart(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_IMAGE", err.Error()))
		return
	}

	alert, err := api.svc.Create(c.Request.Context(), text, image)
	if err != nil {
		log.Error().Err(err).Msg("CreateAlert failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

func (api *Api) GetAlert(c *gin.Context) {
	alert, err := api.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (api *Api) UpdateAlert(c *gin.Context) {
	text := c.PostForm("text")
	image, err := readImagePart(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_IMAGE", err.Error()))
		return
	}

	alert, err := api.svc.Update(c.Request.Context(), c.Param("id"), text, image)
	if err != nil {
		log.Error().Err(err).Str("alert_id", c.Param("id")).Msg("UpdateAlert failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (api *Api) DeleteAlert(c *gin.Context) {
	if err := api.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Error().Err(err).Str("alert_id", c.Param("id")).Msg("DeleteAlert failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "alert removed"})
}

// readImagePart extracts the optional multipart image. A missing part is not
// an error; a part that cannot be read is.
func readImagePart(c *gin.Context) (*service.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return openImagePart(fileHeader)
}

func openImagePart(fh *multipart.FileHeader) (*service.ImageUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &service.ImageUpload{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
	}, nil
}

func writeError(c *gin.Context, err error) {
	var vErr *model.ValidationError
	var upErr *model.UploadError

	switch {
	case errors.Is(err, model.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, errorBody("ALERT_NOT_FOUND", "alert not found"))
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, errorBody("INVALID_PARAMETER", vErr.Error()))
	case errors.As(err, &upErr):
		c.JSON(http.StatusBadGateway, errorBody("UPLOAD_FAILED", "media store upload failed"))
	default:
		c.JSON(http.StatusInternalServerError, errorBody("INTERNAL", "internal server error"))
	}
}

func errorBody(code, message string) map[string]any {
	return map[string]any{"error": map[string]any{"code": code, "message": message}}
}
