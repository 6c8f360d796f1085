package models

import "interface-reconciler/core/reconcile"

// InterfaceRow is the default layout of the interface catalog table. Column names
// equal the record field names, so an unconfigured ruleset reads it as is.
type InterfaceRow struct {
	ID              uint   `gorm:"primaryKey;column:id"`
	SenderSystem    string `gorm:"column:sender_system;type:varchar(100)"`
	ReceiverSystem  string `gorm:"column:receiver_system;type:varchar(100)"`
	InterfaceName   string `gorm:"column:interface_name;type:varchar(200);index"`
	SenderCorp      string `gorm:"column:sender_corp;type:varchar(100)"`
	ReceiverCorp    string `gorm:"column:receiver_corp;type:varchar(100)"`
	Package         string `gorm:"column:package;type:varchar(200)"`
	Task            string `gorm:"column:task;type:varchar(200)"`
	EMSName         string `gorm:"column:ems_name;type:varchar(200)"`
	GroupID         string `gorm:"column:group_id;type:varchar(100)"`
	EventID         string `gorm:"column:event_id;type:varchar(100)"`
	SourceTable     string `gorm:"column:source_table;type:varchar(200)"`
	DestTable       string `gorm:"column:dest_table;type:varchar(200)"`
	Routing         string `gorm:"column:routing;type:varchar(200)"`
	Schedule        string `gorm:"column:schedule;type:varchar(100)"`
	CycleType       string `gorm:"column:cycle_type;type:varchar(50)"`
	Cycle           string `gorm:"column:cycle;type:varchar(50)"`
	DevelopmentType string `gorm:"column:development_type;type:varchar(50)"`
}

// TableName overrides the table name.
func (InterfaceRow) TableName() string {
	return "interface_catalog"
}

// FromRecord builds a row from a catalog record.
func FromRecord(r reconcile.InterfaceRecord) InterfaceRow {
	return InterfaceRow{
		SenderSystem:    r.SenderSystem,
		ReceiverSystem:  r.ReceiverSystem,
		InterfaceName:   r.InterfaceName,
		SenderCorp:      r.SenderCorp,
		ReceiverCorp:    r.ReceiverCorp,
		Package:         r.Package,
		Task:            r.Task,
		EMSName:         r.EMSName,
		GroupID:         r.GroupID,
		EventID:         r.EventID,
		SourceTable:     r.SourceTable,
		DestTable:       r.DestTable,
		Routing:         r.Routing,
		Schedule:        r.Schedule,
		CycleType:       r.CycleType,
		Cycle:           r.Cycle,
		DevelopmentType: r.DevelopmentType,
	}
}

// ColumnMappingRow is the default layout of the column mapping table.
type ColumnMappingRow struct {
	ID         uint   `gorm:"primaryKey;column:id"`
	SendOwner  string `gorm:"column:send_owner;type:varchar(100)"`
	SendTable  string `gorm:"column:send_table;type:varchar(100)"`
	SendColumn string `gorm:"column:send_column;type:varchar(100)"`
	RecvOwner  string `gorm:"column:recv_owner;type:varchar(100)"`
	RecvTable  string `gorm:"column:recv_table;type:varchar(100)"`
	RecvColumn string `gorm:"column:recv_column;type:varchar(100)"`
}

// TableName overrides the table name.
func (ColumnMappingRow) TableName() string {
	return "column_mappings"
}

// FromMapping builds a row from a column mapping.
func FromMapping(m reconcile.ColumnMapping) ColumnMappingRow {
	return ColumnMappingRow{
		SendOwner:  m.Send.Owner,
		SendTable:  m.Send.Table,
		SendColumn: m.Send.Column,
		RecvOwner:  m.Recv.Owner,
		RecvTable:  m.Recv.Table,
		RecvColumn: m.Recv.Column,
	}
}

// All returns every catalog model, in migration order.
func All() []any {
	return []any{&InterfaceRow{}, &ColumnMappingRow{}}
}
