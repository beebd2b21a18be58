package models

// KVEntryModel is one key of the SQL-backed key-value store.
type KVEntryModel struct {
	Key       string `gorm:"column:key;primaryKey;size:191"`
	Value     string `gorm:"not null"` // longtext on MySQL, text elsewhere
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (KVEntryModel) TableName() string {
	return "kv_entries"
}
