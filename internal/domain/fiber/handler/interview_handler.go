package handler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/middleware"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/fadilmartias/hr-backend/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	maxTranscriptSize   = 5 * 1024 * 1024
	transcriptFormField = "interview_file"

	// MaxRequestBodySize leaves room for the other multipart fields so a
	// transcript at the size cap still reaches the handler's own check.
	MaxRequestBodySize = maxTranscriptSize + 1024*1024
)

type InterviewUsecase interface {
	Schedule(ctx context.Context, req dto.ScheduleInterviewRequest) (*model.Interview, error)
	GetAnalysis(ctx context.Context, id string) (*dto.InterviewAnalysisResponse, error)
}

type InterviewHandler struct {
	uc  InterviewUsecase
	log *zap.Logger
}

func NewInterviewHandler(uc InterviewUsecase, log *zap.Logger) *InterviewHandler {
	return &InterviewHandler{uc: uc, log: log.Named("interview_handler")}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/interviews")
	g.Post("/schedule", middleware.RateLimiter(10, time.Minute), h.Schedule)
	g.Get("/:id/analysis", h.Analysis)
}

// Schedule accepts JSON or multipart form data. A multipart request may send
// the transcript as an interview_file upload instead of interview_text.
func (h *InterviewHandler) Schedule(c *fiber.Ctx) error {
	var req dto.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}

	if strings.TrimSpace(req.InterviewText) == "" && isMultipart(c) {
		text, err := h.transcriptFromUpload(c)
		if err != nil {
			return util.AppErrorResponse(c, err)
		}
		req.InterviewText = text
	}

	interview, err := h.uc.Schedule(c.UserContext(), req)
	if err != nil {
		return util.AppErrorResponse(c, err)
	}

	const message = "Interview scheduled and analysis completed."
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: message,
		Data: dto.ScheduleInterviewResponse{
			Message:     message,
			InterviewID: interview.ID,
			CandidateID: interview.CandidateID,
		},
	})
}

func (h *InterviewHandler) Analysis(c *fiber.Ctx) error {
	analysis, err := h.uc.GetAnalysis(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview analysis",
		Data:    analysis,
	})
}

// transcriptFromUpload returns the text of the uploaded transcript.
func (h *InterviewHandler) transcriptFromUpload(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile(transcriptFormField)
	if err != nil {
		return "", &apperror.Error{
			Kind:    apperror.KindValidation,
			Message: fmt.Sprintf("interview_text or %s is required.", transcriptFormField),
			Err:     err,
		}
	}

	if file.Size > maxTranscriptSize {
		return "", apperror.Validation("%s file size is too large (max 5MB).", transcriptFormField)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(util.SupportedTranscriptExtensions, ext) {
		return "", apperror.Validation("Unsupported %s file type %q.", transcriptFormField, ext)
	}

	dir, err := os.MkdirTemp("", "transcript-*")
	if err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	defer os.RemoveAll(dir)

	savePath := filepath.Join(dir, "transcript"+ext)
	if err := c.SaveFile(file, savePath); err != nil {
		return "", fmt.Errorf("save %s: %w", transcriptFormField, err)
	}

	text, err := util.ExtractText(savePath, h.log)
	if err != nil {
		return "", &apperror.Error{
			Kind:    apperror.KindValidation,
			Message: fmt.Sprintf("Failed to extract %s text.", transcriptFormField),
			Err:     err,
		}
	}
	return text, nil
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}
