package api

import (
	"github.com/carelink-org/rpm/billing"
	"go.uber.org/fx"
)

type Handler struct {
	summaries billing.Summaries
	reports   billing.Reports
}

type Params struct {
	fx.In

	Summaries billing.Summaries
	Reports   billing.Reports
}

func NewHandler(p Params) *Handler {
	return &Handler{
		summaries: p.Summaries,
		reports:   p.Reports,
	}
}
