// Package forms implements the forms client port against the Google
// Forms and Drive APIs.
package forms

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"

	"github.com/formery-dev/formery/internal/connectors/google"
	"github.com/formery-dev/formery/internal/core/domain"
	"github.com/formery-dev/formery/internal/core/ports/driven"
	"github.com/formery-dev/formery/internal/logger"
)

// MimeTypeForm is the Drive MIME type of Google Forms files.
const MimeTypeForm = "application/vnd.google-apps.form"

// listPageSize bounds a single Drive listing call.
const listPageSize = 100

// Ensure Client implements the interface.
var _ driven.FormsClient = (*Client)(nil)

// Client talks to the Google Forms API, falling back to Drive for the
// operations Forms does not offer (listing and deleting form files).
type Client struct {
	forms        *forms.Service
	drive        *drive.Service
	formsLimiter *google.RateLimiter
	driveLimiter *google.RateLimiter
}

// NewClient creates a forms client from pre-built API services.
func NewClient(formsSvc *forms.Service, driveSvc *drive.Service) *Client {
	return &Client{
		forms:        formsSvc,
		drive:        driveSvc,
		formsLimiter: google.NewRateLimiter(google.ServiceForms),
		driveLimiter: google.NewRateLimiter(google.ServiceDrive),
	}
}

// Create builds a new remote form from the plan: one Create call for
// the title, then one BatchUpdate carrying the description and every
// item in document order.
func (c *Client) Create(ctx context.Context, plan *domain.FormPlan) (*domain.FormRef, error) {
	if err := c.formsLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	form, err := c.forms.Forms.Create(&forms.Form{
		Info: &forms.Info{Title: plan.Title},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("create form: %w", google.WrapError(err))
	}
	logger.Debug("created form %s", form.FormId)

	requests := buildRequests(plan)
	if len(requests) > 0 {
		if err := c.batchUpdate(ctx, form.FormId, requests); err != nil {
			return nil, err
		}
	}

	return &domain.FormRef{
		FormID:       form.FormId,
		Title:        plan.Title,
		ResponderURI: form.ResponderUri,
	}, nil
}

// Update replaces an existing form's info and items with the plan's.
// The Forms API has no bulk replace, so the batch deletes every current
// item (highest index first) before re-creating from the plan.
func (c *Client) Update(ctx context.Context, formID string, plan *domain.FormPlan) error {
	if err := c.formsLimiter.Wait(ctx); err != nil {
		return err
	}

	form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get form: %w", google.WrapError(err))
	}

	requests := buildUpdateInfoRequest(plan)
	requests = append(requests, buildDeleteItemRequests(len(form.Items))...)
	requests = append(requests, buildItemRequests(plan)...)

	return c.batchUpdate(ctx, formID, requests)
}

func (c *Client) batchUpdate(ctx context.Context, formID string, requests []*forms.Request) error {
	if err := c.formsLimiter.Wait(ctx); err != nil {
		return err
	}

	logger.Debug("batch update on %s with %d requests", formID, len(requests))
	_, err := c.forms.Forms.BatchUpdate(formID, &forms.BatchUpdateFormRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		if google.IsRateLimited(err) {
			c.formsLimiter.RecordRateLimitError(0)
		}
		return fmt.Errorf("batch update: %w", google.WrapError(err))
	}
	return nil
}

// List returns the user's forms via a Drive query on the form MIME type.
func (c *Client) List(ctx context.Context) ([]domain.FormInfo, error) {
	if err := c.driveLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	files, err := c.drive.Files.List().
		Q(fmt.Sprintf("mimeType='%s' and trashed=false", MimeTypeForm)).
		Fields("files(id,name,modifiedTime,webViewLink)").
		OrderBy("modifiedTime desc").
		PageSize(listPageSize).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", google.WrapError(err))
	}

	infos := make([]domain.FormInfo, 0, len(files.Files))
	for _, f := range files.Files {
		infos = append(infos, fileToFormInfo(f))
	}
	return infos, nil
}

// Delete removes a form file via Drive.
func (c *Client) Delete(ctx context.Context, formID string) error {
	if err := c.driveLimiter.Wait(ctx); err != nil {
		return err
	}

	if err := c.drive.Files.Delete(formID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete form: %w", google.WrapError(err))
	}
	return nil
}

// Responses fetches the form's responses plus the answer columns in
// form item order.
func (c *Client) Responses(ctx context.Context, formID string) ([]domain.ResponseColumn, []domain.ResponseRecord, error) {
	if err := c.formsLimiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("get form: %w", google.WrapError(err))
	}
	columns := responseColumns(form)

	if err := c.formsLimiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	resp, err := c.forms.Forms.Responses.List(formID).Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("list responses: %w", google.WrapError(err))
	}

	records := make([]domain.ResponseRecord, 0, len(resp.Responses))
	for _, r := range resp.Responses {
		records = append(records, toRecord(r))
	}
	return columns, records, nil
}
