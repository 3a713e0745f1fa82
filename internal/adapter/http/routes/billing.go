package routes

import (
	"fieldbilling/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathLineItems = "/line-items"
	PathJobs      = "/jobs"
	PathInvoices  = "/invoices"
	PathTax       = "/tax"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	lineItemHandler *handlers.LineItemHandler,
	jobReportHandler *handlers.JobReportHandler,
	invoiceHandler *handlers.InvoiceHandler,
	taxHandler *handlers.TaxHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.POST("/:id/recalculate", estimateHandler.RecalculateEstimate)
		estimates.PATCH("/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/cancel", estimateHandler.CancelEstimate)
	}

	lineItems := rg.Group(PathLineItems)
	{
		lineItems.POST("", lineItemHandler.AddLineItem)
		lineItems.GET("/:id", lineItemHandler.GetLineItem)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.GET("/:job_id/line-items", lineItemHandler.ListLineItemsByJob)
		jobs.GET("/:job_id/estimate", estimateHandler.GetEstimateByJob)
		jobs.GET("/:job_id/invoice", invoiceHandler.GetInvoiceByJob)
		jobs.GET("/:job_id/report", jobReportHandler.GetProfitLoss)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/issue", invoiceHandler.IssueInvoice)
		invoices.PATCH("/:id/pay", invoiceHandler.MarkInvoicePaid)
	}

	tax := rg.Group(PathTax)
	{
		tax.GET("/jurisdictions", taxHandler.ListJurisdictions)
		tax.GET("/jurisdictions/:code", taxHandler.GetJurisdiction)
	}
}
