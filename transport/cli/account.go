package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	supportDto "crewlink/internal/domains/support/model/dto"
)

type TeamListCmd struct{}

func (c *TeamListCmd) Run(appCtx *Context) error {
	res, err := appCtx.Team.List(context.Background())
	if err != nil {
		return err
	}

	for _, member := range res.Members {
		status := "active"
		if !member.Active {
			status = "inactive"
		}

		printRow(member.Name, member.Email, member.Position, status)
	}

	return nil
}

type PaymentListCmd struct {
	listFlags
}

func (c *PaymentListCmd) Run(appCtx *Context) error {
	res, err := appCtx.Payments.List(context.Background(), c.params())
	if err != nil {
		return err
	}

	for _, payment := range res.Payments {
		printRow(payment.ID, payment.BookingID, fmt.Sprintf("%.2f %s", payment.Amount, payment.Currency), payment.Status)
	}

	printCount(len(res.Payments), res.TotalData)

	return nil
}

type PaymentGetCmd struct {
	ID string `arg:"" help:"Payment id."`
}

func (c *PaymentGetCmd) Run(appCtx *Context) error {
	payment, err := appCtx.Payments.Get(context.Background(), c.ID)
	if err != nil {
		return err
	}

	printField("Payment", payment.ID)
	printField("Booking", payment.BookingID)
	printField("Amount", fmt.Sprintf("%.2f %s", payment.Amount, payment.Currency))
	printField("Status", payment.Status)

	if payment.Method != "" {
		printField("Method", payment.Method)
	}

	return nil
}

type SupportNewCmd struct {
	Subject string `help:"Ticket subject. Prompted for when omitted."`
	Message string `help:"Ticket message. Prompted for when omitted."`
}

func (c *SupportNewCmd) Run(appCtx *Context) error {
	if c.Subject == "" || c.Message == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Subject").
					Value(&c.Subject).
					Validate(notBlank("subject")),
				huh.NewText().
					Title("Message").
					Value(&c.Message).
					Validate(notBlank("message")),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}
	}

	res, err := appCtx.Support.CreateTicket(context.Background(), supportDto.CreateTicketRequest{
		Subject: strings.TrimSpace(c.Subject),
		Message: strings.TrimSpace(c.Message),
	})
	if err != nil {
		return err
	}

	if res.ID != "" {
		printSuccess("Ticket created: " + res.ID)
	} else {
		printSuccess("Ticket created.")
	}

	return nil
}

type SupportListCmd struct{}

func (c *SupportListCmd) Run(appCtx *Context) error {
	res, err := appCtx.Support.ListTickets(context.Background())
	if err != nil {
		return err
	}

	for _, ticket := range res.Tickets {
		printRow(ticket.ID, ticket.Status, ticket.Subject)
	}

	return nil
}

func notBlank(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " cannot be empty")
		}

		return nil
	}
}
