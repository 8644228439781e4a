package fishaudio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ModelService provides voice model operations.
type ModelService struct {
	client *Client
}

// newModelService creates a new model service.
func newModelService(client *Client) *ModelService {
	return &ModelService{client: client}
}

// Create uploads voice samples and creates a model from them.
//
// Type, TrainMode and Visibility fall back to tts, fast and private. With
// TrainModeFast the returned model is usable immediately even while its state
// still reports training.
func (s *ModelService) Create(ctx context.Context, req *CreateModelRequest) (*Model, error) {
	if req == nil {
		return nil, errors.New("fishaudio: nil create model request")
	}
	if req.Title == "" {
		return nil, errors.New("fishaudio: model title is required")
	}
	if len(req.Voices) == 0 {
		return nil, errors.New("fishaudio: at least one voice sample is required")
	}

	modelType := req.Type
	if modelType == "" {
		modelType = ModelTypeTTS
	}
	trainMode := req.TrainMode
	if trainMode == "" {
		trainMode = TrainModeFast
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = VisibilityPrivate
	}

	fields := []formField{
		{"title", req.Title},
		{"type", string(modelType)},
		{"train_mode", string(trainMode)},
		{"visibility", string(visibility)},
	}
	if req.Description != "" {
		fields = append(fields, formField{"description", req.Description})
	}
	if req.EnhanceAudioQuality {
		fields = append(fields, formField{"enhance_audio_quality", strconv.FormatBool(true)})
	}
	for _, text := range req.Texts {
		fields = append(fields, formField{"texts", text})
	}
	for _, tag := range req.Tags {
		fields = append(fields, formField{"tags", tag})
	}

	files := make([]formFile, 0, len(req.Voices))
	for i, v := range req.Voices {
		name := v.Filename
		if name == "" {
			name = fmt.Sprintf("voice-%d", i)
		}
		files = append(files, formFile{field: "voices", filename: name, data: v.Data})
	}

	var model Model
	if err := s.client.http.uploadMultipart(ctx, "/model", fields, files, &model); err != nil {
		return nil, err
	}
	if model.ID == "" {
		return nil, errors.New("fishaudio: no model id in response")
	}
	return &model, nil
}

// Get retrieves a model by id.
func (s *ModelService) Get(ctx context.Context, id string) (*Model, error) {
	if id == "" {
		return nil, errors.New("fishaudio: model id is required")
	}
	var model Model
	if err := s.client.http.request(ctx, http.MethodGet, "/model/"+url.PathEscape(id), nil, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// Delete deletes a model owned by the account.
func (s *ModelService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("fishaudio: model id is required")
	}
	return s.client.http.request(ctx, http.MethodDelete, "/model/"+url.PathEscape(id), nil, nil)
}
