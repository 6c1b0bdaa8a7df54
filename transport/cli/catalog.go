package cli

import (
	"context"
	"fmt"
	"strings"
)

type StudioListCmd struct {
	listFlags
	City string `help:"Filter by city (uses search)."`
}

func (c *StudioListCmd) Run(appCtx *Context) error {
	params := c.params()
	if c.City != "" {
		params.Search = c.City
	}

	res, err := appCtx.Studios.List(context.Background(), params)
	if err != nil {
		return err
	}

	for _, studio := range res.Studios {
		printRow(studio.ID, studio.Name, studio.City, fmt.Sprintf("%.0f/hr", studio.HourlyRate), ratingLabel(studio.Rating, studio.ReviewCount))
	}

	printCount(len(res.Studios), res.TotalData)

	return nil
}

type StudioGetCmd struct {
	ID string `arg:"" help:"Studio id."`
}

func (c *StudioGetCmd) Run(appCtx *Context) error {
	studio, err := appCtx.Studios.Get(context.Background(), c.ID)
	if err != nil {
		return err
	}

	printField("Studio", studio.Name)
	printField("City", studio.City)

	if studio.Address != "" {
		printField("Address", studio.Address)
	}

	printField("Hourly rate", fmt.Sprintf("%.2f", studio.HourlyRate))
	printField("Rating", ratingLabel(studio.Rating, studio.ReviewCount))

	if studio.Description != "" {
		fmt.Println(studio.Description)
	}

	return nil
}

type FreelancerListCmd struct {
	listFlags
}

func (c *FreelancerListCmd) Run(appCtx *Context) error {
	res, err := appCtx.Freelancers.List(context.Background(), c.params())
	if err != nil {
		return err
	}

	for _, freelancer := range res.Freelancers {
		availability := "available"
		if !freelancer.Available {
			availability = "booked"
		}

		printRow(freelancer.ID, freelancer.Name, freelancer.City, availability, ratingLabel(freelancer.Rating, freelancer.ReviewCount))
	}

	printCount(len(res.Freelancers), res.TotalData)

	return nil
}

type FreelancerGetCmd struct {
	ID string `arg:"" help:"Freelancer id."`
}

func (c *FreelancerGetCmd) Run(appCtx *Context) error {
	freelancer, err := appCtx.Freelancers.Get(context.Background(), c.ID)
	if err != nil {
		return err
	}

	printField("Freelancer", freelancer.Name)
	printField("City", freelancer.City)
	printField("Day rate", fmt.Sprintf("%.2f", freelancer.DayRate))
	printField("Rating", ratingLabel(freelancer.Rating, freelancer.ReviewCount))

	if len(freelancer.Skills) > 0 {
		printField("Skills", strings.Join(freelancer.Skills, ", "))
	}

	if freelancer.Bio != "" {
		fmt.Println(freelancer.Bio)
	}

	return nil
}

type PackageListCmd struct {
	StudioID string `arg:"" help:"Studio id whose packages to list."`
}

func (c *PackageListCmd) Run(appCtx *Context) error {
	res, err := appCtx.Packages.ListByStudio(context.Background(), c.StudioID)
	if err != nil {
		return err
	}

	for _, pack := range res.Packages {
		printRow(pack.ID, pack.Name, fmt.Sprintf("%dmin", pack.DurationMinutes), fmt.Sprintf("%.2f", pack.Price))
	}

	return nil
}

type HelperListCmd struct {
	listFlags
}

func (c *HelperListCmd) Run(appCtx *Context) error {
	res, err := appCtx.Helpers.List(context.Background(), c.params())
	if err != nil {
		return err
	}

	for _, helper := range res.Helpers {
		printRow(helper.ID, helper.Name, helper.City, fmt.Sprintf("%.2f/day", helper.DayRate))
	}

	printCount(len(res.Helpers), res.TotalData)

	return nil
}

type PortfolioCmd struct {
	EntityType string `arg:"" help:"Entity type: studio or freelancer."`
	EntityID   string `arg:"" help:"Entity id."`
}

func (c *PortfolioCmd) Run(appCtx *Context) error {
	res, err := appCtx.Portfolio.Get(context.Background(), c.EntityType, c.EntityID)
	if err != nil {
		return err
	}

	for _, item := range res.Items {
		title := item.Title
		if title == "" {
			title = "(untitled)"
		}

		printRow(item.MediaType, title, item.MediaURL)
	}

	return nil
}

func ratingLabel(rating float64, count int) string {
	if count == 0 {
		return "unrated"
	}

	return fmt.Sprintf("%.1f (%d reviews)", rating, count)
}
