package cli

import (
	"context"

	"crewlink/shared/constant"
)

type BookingListCmd struct {
	listFlags
	Role string `help:"View as role (user or partner). Defaults to the session role." enum:"user,partner,"`
}

func (c *BookingListCmd) Run(appCtx *Context) error {
	ctx := context.Background()

	role := c.Role
	if role == "" {
		role = appCtx.Role(ctx)
	}

	if role == "" {
		role = constant.RoleUser
	}

	res, err := appCtx.Bookings.List(ctx, role, c.params())
	if err != nil {
		return err
	}

	for _, booking := range res.Bookings {
		id := booking.CustomBookingID
		if id == "" {
			id = booking.ID
		}

		printRow(id, booking.EntityType, booking.Status, booking.WorkflowStatus)
	}

	printCount(len(res.Bookings), res.TotalData)

	return nil
}

type BookingGetCmd struct {
	ID string `arg:"" help:"Booking id."`
}

func (c *BookingGetCmd) Run(appCtx *Context) error {
	booking, err := appCtx.Bookings.Get(context.Background(), c.ID)
	if err != nil {
		return err
	}

	id := booking.CustomBookingID
	if id == "" {
		id = booking.ID
	}

	printField("Booking", id)
	printField("Status", booking.Status)
	printField("Workflow", booking.WorkflowStatus)
	printField("Entity", booking.EntityType+" "+booking.EntityID)

	if booking.ContentTitle != "" {
		printField("Content title", booking.ContentTitle)
	}

	if booking.Notes != "" {
		printField("Notes", booking.Notes)
	}

	if booking.ClosureRequest != constant.ClosureRequestNone {
		printField("Closure request", booking.ClosureRequest)
	}

	return nil
}
