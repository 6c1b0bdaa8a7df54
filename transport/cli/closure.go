package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"

	bookingDto "crewlink/internal/domains/booking/model/dto"
	"crewlink/internal/workflow"
)

// ClosureStatusCmd shows the derived closure-workflow state of a booking,
// rendered for the viewer's role.
type ClosureStatusCmd struct {
	BookingID string `arg:"" help:"Booking id."`
	Refresh   bool   `help:"Bypass the cache and refetch from the server."`
}

func (c *ClosureStatusCmd) Run(appCtx *Context) error {
	ctx := context.Background()

	view, err := workflow.ViewFor(appCtx.Role(ctx))
	if err != nil {
		return err
	}

	snapshot := appCtx.Workflow.Snapshot
	if c.Refresh {
		snapshot = appCtx.Workflow.Refresh
	}

	state, err := snapshot(ctx, c.BookingID)
	if err != nil {
		return err
	}

	fmt.Print(view.Render(state))

	return nil
}

// ClosureContentCmd updates the content details of a booking through the
// partner surface.
type ClosureContentCmd struct {
	BookingID string `arg:"" help:"Booking id."`
	Title     string `help:"Content title. Prompted for when omitted."`
	Notes     string `help:"Editing notes. Prompted for when omitted."`
}

func (c *ClosureContentCmd) Run(appCtx *Context) error {
	ctx := context.Background()

	if c.Title == "" || c.Notes == "" {
		booking, err := appCtx.Bookings.Get(ctx, c.BookingID)
		if err != nil {
			return err
		}

		if c.Title == "" {
			c.Title = booking.ContentTitle
		}

		if c.Notes == "" {
			c.Notes = booking.Notes
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Content title").
					Value(&c.Title).
					Validate(notBlank("content title")),
				huh.NewText().
					Title("Notes").
					Value(&c.Notes).
					Validate(notBlank("notes")),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}
	}

	state, err := appCtx.Workflow.UpdateContentDetails(ctx, c.BookingID, bookingDto.UpdateContentDetailsRequest{
		ContentTitle: c.Title,
		Notes:        c.Notes,
	})
	if err != nil {
		return err
	}

	printSuccess("Content details updated.")

	return renderState(appCtx, state)
}

// ClosureAcceptCmd accepts a pending closure request. Only meaningful while
// the booking sits in the closure-requested phase; the server rejects it
// otherwise.
type ClosureAcceptCmd struct {
	BookingID string `arg:"" help:"Booking id."`
}

func (c *ClosureAcceptCmd) Run(appCtx *Context) error {
	state, err := appCtx.Workflow.AcceptClosure(context.Background(), c.BookingID)
	if err != nil {
		return err
	}

	printSuccess("Closure accepted.")

	return renderState(appCtx, state)
}

// ClosureReviewCmd writes or edits the review for a booking. The form keeps a
// local draft per booking so interrupted or rejected submissions do not lose
// the text; a successful submission discards the draft.
type ClosureReviewCmd struct {
	BookingID string `arg:"" help:"Booking id."`
	Title     string `help:"Review title. Prompted for when omitted."`
	Body      string `help:"Review body. Prompted for when omitted."`
	Rating    int    `help:"Rating 1-5. Prompted for when omitted."`
	Edit      bool   `help:"Edit the existing review instead of showing it."`
}

func (c *ClosureReviewCmd) Run(appCtx *Context) error {
	ctx := context.Background()

	form := workflow.ReviewForm{
		Title:  c.Title,
		Review: c.Body,
		Rating: c.Rating,
	}

	interactive := form.Title == "" || form.Review == "" || form.Rating == 0
	if interactive {
		if err := c.prefill(ctx, appCtx, &form); err != nil {
			return err
		}

		if err := c.prompt(&form); err != nil {
			return err
		}

		// Keep the text even if the submission below fails.
		if err := appCtx.Drafts.Save(ctx, workflow.Draft{
			BookingID: c.BookingID,
			Title:     form.Title,
			Body:      form.Review,
			Rating:    form.Rating,
		}); err != nil {
			log.Warn().Err(err).Str("bookingId", c.BookingID).Msg("failed to save review draft")
		}
	}

	state, err := appCtx.Workflow.SubmitReview(ctx, c.BookingID, form)
	if err != nil {
		return err
	}

	printSuccess("Review submitted.")

	return renderState(appCtx, state)
}

// prefill seeds the form from the local draft, or from the existing review
// when editing one.
func (c *ClosureReviewCmd) prefill(ctx context.Context, appCtx *Context, form *workflow.ReviewForm) error {
	draft, err := appCtx.Drafts.Load(ctx, c.BookingID)
	if err != nil {
		return err
	}

	if draft != nil {
		fillForm(form, draft.Title, draft.Body, draft.Rating)

		return nil
	}

	if !c.Edit {
		return nil
	}

	review, err := appCtx.Reviews.Get(ctx, c.BookingID)
	if err != nil {
		return err
	}

	if review != nil {
		fillForm(form, review.Title, review.Review, review.Rating)
	}

	return nil
}

func (c *ClosureReviewCmd) prompt(form *workflow.ReviewForm) error {
	rating := ""
	if form.Rating > 0 {
		rating = strconv.Itoa(form.Rating)
	}

	prompt := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Rating").
				Options(
					huh.NewOption("★★★★★", "5"),
					huh.NewOption("★★★★☆", "4"),
					huh.NewOption("★★★☆☆", "3"),
					huh.NewOption("★★☆☆☆", "2"),
					huh.NewOption("★☆☆☆☆", "1"),
				).
				Value(&rating),
			huh.NewInput().
				Title("Title").
				Value(&form.Title).
				Validate(notBlank("title")),
			huh.NewText().
				Title("Review").
				Value(&form.Review).
				Validate(notBlank("review")),
		),
	)

	if err := prompt.Run(); err != nil {
		return err
	}

	form.Rating, _ = strconv.Atoi(rating)

	return nil
}

func fillForm(form *workflow.ReviewForm, title, body string, rating int) {
	if form.Title == "" {
		form.Title = title
	}

	if form.Review == "" {
		form.Review = body
	}

	if form.Rating == 0 {
		form.Rating = rating
	}
}

func renderState(appCtx *Context, state workflow.State) error {
	view, err := workflow.ViewFor(appCtx.Role(context.Background()))
	if err != nil {
		return err
	}

	fmt.Print(view.Render(state))

	return nil
}
