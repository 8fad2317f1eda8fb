package model

// Network labels the chain being mirrored.
type Network string

// Schema describes a collection and the field mapping it is created with.
type Schema struct {
	Name    string
	Mapping map[string]any
}

// BlocksCollection returns the name of the blocks collection for a prefix.
func BlocksCollection(prefix string) string {
	return prefix + "-blocks"
}

// MetaCollection returns the name of the checkpoint collection for a prefix.
func MetaCollection(prefix string) string {
	return prefix + "-meta"
}

// BlocksSchema is the schema of the blocks collection.
func BlocksSchema(name string) Schema {
	keyword := map[string]any{"type": "keyword"}
	long := map[string]any{"type": "long"}
	integer := map[string]any{"type": "integer"}

	return Schema{
		Name: name,
		Mapping: map[string]any{
			"mappings": map[string]any{
				"properties": map[string]any{
					"number":           long,
					"hash":             keyword,
					"parent_hash":      keyword,
					"timestamp":        long,
					"gas_limit":        long,
					"gas_used":         long,
					"miner":            keyword,
					"difficulty":       keyword,
					"total_difficulty": keyword,
					"size":             long,
					"transactions": map[string]any{
						"type": "nested",
						"properties": map[string]any{
							"hash":              keyword,
							"from":              keyword,
							"to":                keyword,
							"value":             keyword,
							"gas":               long,
							"gas_price":         keyword,
							"input":             map[string]any{"type": "text"},
							"nonce":             long,
							"transaction_index": long,
						},
					},
					"transaction_count": integer,
					"uncles":            integer,
					"indexed_at":        long,
				},
			},
			"settings": map[string]any{
				"number_of_shards":   1,
				"number_of_replicas": 0,
			},
		},
	}
}

// MetaSchema is the schema of the checkpoint collection.
func MetaSchema(name string) Schema {
	return Schema{
		Name: name,
		Mapping: map[string]any{
			"mappings": map[string]any{
				"properties": map[string]any{
					"last_indexed_block": map[string]any{"type": "long"},
					"updated_at":         map[string]any{"type": "long"},
				},
			},
		},
	}
}
