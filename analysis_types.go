package riskgate

// Wire types for the analytical domain. Field names follow the analytical
// backend's snake_case schemas verbatim; this layer decodes but never
// interprets them.

// SpendingTransaction is one transaction submitted for spending-anomaly
// analysis: an amount plus 28 anonymized model features.
type SpendingTransaction struct {
	Amount float64 `json:"amount"`
	V1     float64 `json:"v1"`
	V2     float64 `json:"v2"`
	V3     float64 `json:"v3"`
	V4     float64 `json:"v4"`
	V5     float64 `json:"v5"`
	V6     float64 `json:"v6"`
	V7     float64 `json:"v7"`
	V8     float64 `json:"v8"`
	V9     float64 `json:"v9"`
	V10    float64 `json:"v10"`
	V11    float64 `json:"v11"`
	V12    float64 `json:"v12"`
	V13    float64 `json:"v13"`
	V14    float64 `json:"v14"`
	V15    float64 `json:"v15"`
	V16    float64 `json:"v16"`
	V17    float64 `json:"v17"`
	V18    float64 `json:"v18"`
	V19    float64 `json:"v19"`
	V20    float64 `json:"v20"`
	V21    float64 `json:"v21"`
	V22    float64 `json:"v22"`
	V23    float64 `json:"v23"`
	V24    float64 `json:"v24"`
	V25    float64 `json:"v25"`
	V26    float64 `json:"v26"`
	V27    float64 `json:"v27"`
	V28    float64 `json:"v28"`
}

// SpendingResult is the risk assessment for one analyzed transaction.
type SpendingResult struct {
	Index     int     `json:"index"`
	Amount    float64 `json:"amount"`
	RiskScore float64 `json:"risk_score"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason"`
}

// SpendingAnalysis is the batch spending-anomaly response.
type SpendingAnalysis struct {
	Results        []SpendingResult `json:"results"`
	TotalAnalyzed  int              `json:"total_analyzed"`
	AnomaliesFound int              `json:"anomalies_found"`
}

// LegalDocumentAnalysis is the risk assessment for one document text.
type LegalDocumentAnalysis struct {
	Excerpt      string  `json:"excerpt"`
	RiskScore    float64 `json:"risk_score"`
	Status       string  `json:"status"`
	IsSuspicious bool    `json:"is_suspicious"`
}

// LegalBatchAnalysis is the batch document-scan response.
type LegalBatchAnalysis struct {
	Results         []LegalDocumentAnalysis `json:"results"`
	TotalAnalyzed   int                     `json:"total_analyzed"`
	SuspiciousCount int                     `json:"suspicious_count"`
}

// WelfareClaim is one welfare/healthcare claim submitted for fraud
// detection.
type WelfareClaim struct {
	ClaimID                  string  `json:"claim_id"`
	DurationDays             int     `json:"duration_days"`
	TotalCost                float64 `json:"total_cost"`
	InscClaimAmtReimbursed   float64 `json:"insc_claim_amt_reimbursed"`
	OpAnnualReimbursementAmt float64 `json:"op_annual_reimbursement_amt"`
	IpAnnualReimbursementAmt float64 `json:"ip_annual_reimbursement_amt"`
}

// WelfareFraudResult is the assessment for one claim.
type WelfareFraudResult struct {
	ClaimID   string  `json:"claim_id"`
	RiskScore float64 `json:"risk_score"`
	Status    string  `json:"status"`
	IsFraud   bool    `json:"is_fraud"`
	Reason    string  `json:"reason"`
}

// WelfareFraudAnalysis is the batch claim-analysis response.
type WelfareFraudAnalysis struct {
	Results       []WelfareFraudResult `json:"results"`
	TotalAnalyzed int                  `json:"total_analyzed"`
	HighRiskCount int                  `json:"high_risk_count"`
}

// VendorConnection describes one vendor linked to the analyzed vendor in
// the collusion graph.
type VendorConnection struct {
	VendorID         string  `json:"vendor_id"`
	VendorName       *string `json:"vendor_name"`
	ConnectionWeight int     `json:"connection_weight"`
}

// BidRiggingAnalysis is the cartel/collusion assessment for one vendor.
type BidRiggingAnalysis struct {
	VendorID         string             `json:"vendor_id"`
	VendorName       *string            `json:"vendor_name"`
	TotalConnections int                `json:"total_connections"`
	IsInCartel       bool               `json:"is_in_cartel"`
	CartelSize       *int               `json:"cartel_size"`
	TopConnections   []VendorConnection `json:"top_connections"`
	RiskLevel        string             `json:"risk_level"`
}

// AnalyticalHealth is the analytical backend's health response.
type AnalyticalHealth struct {
	Status       string   `json:"status"`
	ModelsLoaded []string `json:"models_loaded"`
	ModelsFailed []string `json:"models_failed"`
}
