package riskgate

import "context"

// Typed pass-through operations on the analytical domain. Every call rides
// the shared interceptor chain: the bearer token is attached at dispatch
// time and a 401 tears the session down exactly as on the identity domain.

type spendingAnalysisRequest struct {
	Transactions []SpendingTransaction `json:"transactions"`
}

type legalDocumentRequest struct {
	Text string `json:"text"`
}

type welfareFraudRequest struct {
	Claims []WelfareClaim `json:"claims"`
}

type bidRiggingRequest struct {
	VendorID string `json:"vendor_id"`
}

// AnalyzeSpending submits transactions for spending-anomaly detection.
func (g *Gateway) AnalyzeSpending(ctx context.Context, transactions []SpendingTransaction) (SpendingAnalysis, error) {
	if g == nil || g.analytical == nil {
		return SpendingAnalysis{}, ErrGatewayNotReady
	}
	var out SpendingAnalysis
	err := g.analytical.PostJSON(ctx, "/spending/analyze", spendingAnalysisRequest{Transactions: transactions}, &out)
	return out, err
}

// CheckTransaction runs a quick single-transaction risk check.
func (g *Gateway) CheckTransaction(ctx context.Context, tx SpendingTransaction) (SpendingResult, error) {
	if g == nil || g.analytical == nil {
		return SpendingResult{}, ErrGatewayNotReady
	}
	var out SpendingResult
	err := g.analytical.PostJSON(ctx, "/spending/check-single", tx, &out)
	return out, err
}

// AnalyzeLegalDocument scans one document text for suspicious or fabricated
// language.
func (g *Gateway) AnalyzeLegalDocument(ctx context.Context, text string) (LegalDocumentAnalysis, error) {
	if g == nil || g.analytical == nil {
		return LegalDocumentAnalysis{}, ErrGatewayNotReady
	}
	var out LegalDocumentAnalysis
	err := g.analytical.PostJSON(ctx, "/legal/analyze", legalDocumentRequest{Text: text}, &out)
	return out, err
}

// BatchAnalyzeLegalDocuments scans multiple document texts in one call.
func (g *Gateway) BatchAnalyzeLegalDocuments(ctx context.Context, texts []string) (LegalBatchAnalysis, error) {
	if g == nil || g.analytical == nil {
		return LegalBatchAnalysis{}, ErrGatewayNotReady
	}
	docs := make([]legalDocumentRequest, len(texts))
	for i, text := range texts {
		docs[i] = legalDocumentRequest{Text: text}
	}
	var out LegalBatchAnalysis
	err := g.analytical.PostJSON(ctx, "/legal/batch-analyze", docs, &out)
	return out, err
}

// AnalyzeWelfareClaims submits welfare/healthcare claims for fraud
// detection.
func (g *Gateway) AnalyzeWelfareClaims(ctx context.Context, claims []WelfareClaim) (WelfareFraudAnalysis, error) {
	if g == nil || g.analytical == nil {
		return WelfareFraudAnalysis{}, ErrGatewayNotReady
	}
	var out WelfareFraudAnalysis
	err := g.analytical.PostJSON(ctx, "/welfare/analyze", welfareFraudRequest{Claims: claims}, &out)
	return out, err
}

// AnalyzeBidRigging analyzes one vendor for bid-rigging and cartel
// connections.
func (g *Gateway) AnalyzeBidRigging(ctx context.Context, vendorID string) (BidRiggingAnalysis, error) {
	if g == nil || g.analytical == nil {
		return BidRiggingAnalysis{}, ErrGatewayNotReady
	}
	var out BidRiggingAnalysis
	err := g.analytical.PostJSON(ctx, "/bidrigging/analyze", bidRiggingRequest{VendorID: vendorID}, &out)
	return out, err
}

// CheckAnalyticalHealth probes the analytical domain's health endpoint and
// reports which models are loaded.
func (g *Gateway) CheckAnalyticalHealth(ctx context.Context) (AnalyticalHealth, error) {
	if g == nil || g.analytical == nil {
		return AnalyticalHealth{}, ErrGatewayNotReady
	}
	var out AnalyticalHealth
	err := g.analytical.GetJSON(ctx, "/health", &out)
	return out, err
}
