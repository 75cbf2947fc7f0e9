package model

import "time"

// Backup is the JSON document written by an export.
type Backup struct {
	Products   []Product  `json:"products"`
	Employees  []Employee `json:"employees"`
	BackupDate time.Time  `json:"backup_date"`
}

// BackupResult describes a written backup file.
type BackupResult struct {
	Path      string `json:"path,omitempty"`
	Products  int    `json:"products"`
	Employees int    `json:"employees"`
	Queued    bool   `json:"queued"`
	TaskID    string `json:"task_id,omitempty"`
}

// SeedResult reports what a demo-data seed inserted and skipped.
type SeedResult struct {
	ProductsCreated  int `json:"products_created"`
	EmployeesCreated int `json:"employees_created"`
	Skipped          int `json:"skipped"`
}
