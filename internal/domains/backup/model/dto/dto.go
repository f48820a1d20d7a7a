package dto

import "time"

type SnapshotResponse struct {
	Prefix     string    `json:"prefix"`
	CatalogURL string    `json:"catalog_url"`
	LedgerURL  string    `json:"ledger_url"`
	TakenAt    time.Time `json:"taken_at"`
}
