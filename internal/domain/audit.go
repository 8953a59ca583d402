package domain

import "time"

// ChannelUnassigned é o literal usado pelo GA4 para tráfego sem atribuição
const ChannelUnassigned = "Unassigned"

// Estágios do funil de e-commerce, na ordem fixa do relatório
const (
	FunnelStageViewItem      = "view_item"
	FunnelStageAddToCart     = "add_to_cart"
	FunnelStageBeginCheckout = "begin_checkout"
	FunnelStagePurchase      = "purchase"
)

// FunnelStages retorna os estágios do funil na ordem de avaliação
func FunnelStages() []string {
	return []string{
		FunnelStageViewItem,
		FunnelStageAddToCart,
		FunnelStageBeginCheckout,
		FunnelStagePurchase,
	}
}

// AuditSummary é o resumo plano da auditoria. Criado uma única vez por
// execução e nunca atualizado parcialmente.
type AuditSummary struct {
	TotalSessions      int64   `json:"total_sessions"`
	TotalUsers         int64   `json:"total_users"`
	SessionsPerUser    float64 `json:"sessions_per_user"`
	UnassignedSessions int64   `json:"unassigned_sessions"`
	PercentUnassigned  float64 `json:"percent_unassigned"`
	TotalTransactions  int64   `json:"total_transactions"`
	TotalRevenue       float64 `json:"total_revenue"`
}

// MediumSessions é uma entrada do detalhamento por meio de sessão do
// tráfego Unassigned
type MediumSessions struct {
	Medium   string `json:"medium"`
	Sessions int64  `json:"sessions"`
}

// DuplicateTransaction é um ID de transação que ocorreu mais de uma vez na
// janela auditada
type DuplicateTransaction struct {
	TransactionID string `json:"transaction_id"`
	Count         int64  `json:"count"`
}

// FunnelSummary contém as contagens de eventos por estágio do funil e as
// taxas de conversão derivadas entre estágios
type FunnelSummary struct {
	ViewItem      int64 `json:"view_item"`
	AddToCart     int64 `json:"add_to_cart"`
	BeginCheckout int64 `json:"begin_checkout"`
	Purchase      int64 `json:"purchase"`

	// Taxas em porcentagem, arredondadas para 2 casas decimais. O denominador
	// é sempre o estágio anterior, exceto ViewToPurchase que divide pelo
	// primeiro estágio. Contagens podem crescer entre consultas filtradas,
	// então taxas acima de 100% são válidas.
	ViewToCart         float64 `json:"view_to_cart"`
	CartToCheckout     float64 `json:"cart_to_checkout"`
	CheckoutToPurchase float64 `json:"checkout_to_purchase"`
	ViewToPurchase     float64 `json:"view_to_purchase"`
}

// AuditResult agrega todas as partes produzidas por uma execução de
// auditoria. Serializável em JSON para que os endpoints de exportação
// recebam o resultado de volta sem camada de persistência.
type AuditResult struct {
	PropertyID        string                 `json:"property_id"`
	GeneratedAt       time.Time              `json:"generated_at"`
	Summary           AuditSummary           `json:"summary"`
	UnassignedMediums []MediumSessions       `json:"unassigned_mediums"`
	Duplicates        []DuplicateTransaction `json:"duplicate_transactions"`
	Funnel            FunnelSummary          `json:"funnel"`
}
