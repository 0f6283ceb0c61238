package response

import (
	"atelie_crm/internal/domain/aggregate"

	"github.com/shopspring/decimal"
)

// DashboardResponse bundles the figures shown on the shop's home screen.
type DashboardResponse struct {
	PendingOrders     int    `json:"pending_orders"`
	InProgressOrders  int    `json:"in_progress_orders"`
	CompletedOrders   int    `json:"completed_orders"`
	CancelledOrders   int    `json:"cancelled_orders"`
	CompletedRevenue  string `json:"completed_revenue"`
	PendingReceivable string `json:"pending_receivable"`
	PendingPayable    string `json:"pending_payable"`
	CashBalance       string `json:"cash_balance"`
}

func FromDashboard(stats aggregate.OrderStats, pending aggregate.PendingTotals, balance decimal.Decimal) DashboardResponse {
	return DashboardResponse{
		PendingOrders:     stats.Pending,
		InProgressOrders:  stats.InProgress,
		CompletedOrders:   stats.Completed,
		CancelledOrders:   stats.Cancelled,
		CompletedRevenue:  stats.CompletedRevenue.StringFixed(2),
		PendingReceivable: pending.Receivable.StringFixed(2),
		PendingPayable:    pending.Payable.StringFixed(2),
		CashBalance:       balance.StringFixed(2),
	}
}
