package surreal

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/studybuddy/studybuddy/internal/backend"
)

// Fields the platform manages itself; client data must not carry them.
var reservedFields = map[string]bool{
	"id":         true,
	"owner":      true,
	"created_at": true,
	"updated_at": true,
}

// CreateDocument creates a document in the caller's scope. The platform
// assigns created/updated timestamps and records the session's account as
// owner.
func (c *Client) CreateDocument(ctx context.Context, collection, id string, data map[string]any) (*backend.Document, error) {
	owner, err := c.sessionAccount(ctx)
	if err != nil {
		return nil, err
	}
	if !validIdent(collection) {
		return nil, backend.NewError(backend.TypeDocumentInvalidStructure, "invalid collection name")
	}

	fields, vars, err := contentFields(data)
	if err != nil {
		return nil, err
	}
	vars["tb"] = collection
	vars["id"] = bareID(id)
	vars["owner"] = owner

	query := fmt.Sprintf(`
		CREATE type::thing($tb, $id) CONTENT {
			%s
			owner: $owner,
			created_at: time::now(),
			updated_at: time::now()
		}
	`, fields)

	row, err := c.queryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	doc, ok := parseDocument(row)
	if !ok {
		return nil, backend.NewError(backend.TypeGeneralUnknown, "unexpected create result")
	}
	return doc, nil
}

// ListDocuments lists the caller's documents with the given modifiers
// applied.
func (c *Client) ListDocuments(ctx context.Context, collection string, queries ...backend.Query) (*backend.DocumentList, error) {
	owner, err := c.sessionAccount(ctx)
	if err != nil {
		return nil, err
	}
	if !validIdent(collection) {
		return nil, backend.NewError(backend.TypeDocumentInvalidStructure, "invalid collection name")
	}

	query, vars, err := buildListQuery(queries)
	if err != nil {
		return nil, err
	}
	vars["tb"] = collection
	vars["owner"] = owner

	rows, err := c.query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	list := &backend.DocumentList{}
	for _, row := range rows {
		if doc, ok := parseDocument(row); ok {
			list.Documents = append(list.Documents, doc)
		}
	}
	list.Total = len(list.Documents)
	return list, nil
}

// GetDocument fetches one document by id within the caller's scope.
func (c *Client) GetDocument(ctx context.Context, collection, id string) (*backend.Document, error) {
	owner, err := c.sessionAccount(ctx)
	if err != nil {
		return nil, err
	}
	if !validIdent(collection) {
		return nil, backend.NewError(backend.TypeDocumentInvalidStructure, "invalid collection name")
	}

	row, err := c.queryOne(ctx,
		`SELECT * FROM type::thing($tb, $id) WHERE owner = $owner`,
		map[string]interface{}{"tb": collection, "id": bareID(id), "owner": owner},
	)
	if err != nil {
		return nil, err
	}
	doc, ok := parseDocument(row)
	if !ok {
		return nil, backend.NewError(backend.TypeDocumentNotFound, "document not found")
	}
	return doc, nil
}

// UpdateDocument merges the given fields into an existing document and
// returns the updated record.
func (c *Client) UpdateDocument(ctx context.Context, collection, id string, data map[string]any) (*backend.Document, error) {
	// Existence and scope check first so a missing document reports
	// document_not_found rather than silently updating nothing.
	if _, err := c.GetDocument(ctx, collection, id); err != nil {
		return nil, err
	}

	fields, vars, err := contentFields(data)
	if err != nil {
		return nil, err
	}
	vars["tb"] = collection
	vars["id"] = bareID(id)

	query := fmt.Sprintf(`
		UPDATE type::thing($tb, $id) MERGE {
			%s
			updated_at: time::now()
		}
	`, fields)

	row, err := c.queryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	doc, ok := parseDocument(row)
	if !ok {
		return nil, backend.NewError(backend.TypeGeneralUnknown, "unexpected update result")
	}
	return doc, nil
}

// DeleteDocument removes a document within the caller's scope.
func (c *Client) DeleteDocument(ctx context.Context, collection, id string) error {
	if _, err := c.GetDocument(ctx, collection, id); err != nil {
		return err
	}

	_, err := c.query(ctx,
		`DELETE type::thing($tb, $id)`,
		map[string]interface{}{"tb": collection, "id": bareID(id)},
	)
	return err
}

// contentFields renders a data map as CONTENT/MERGE fields bound to query
// parameters. Field names cannot be parameterized, so they are validated
// instead; values always travel as parameters.
func contentFields(data map[string]any) (string, map[string]interface{}, error) {
	names := make([]string, 0, len(data))
	for name := range data {
		if reservedFields[name] || !validIdent(name) {
			return "", nil, backend.NewError(backend.TypeDocumentInvalidStructure,
				fmt.Sprintf("invalid document attribute %q", name))
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	vars := make(map[string]interface{}, len(data)+3)
	for _, name := range names {
		fmt.Fprintf(&b, "%s: $f_%s,\n", name, name)
		vars["f_"+name] = data[name]
	}
	return b.String(), vars, nil
}

// buildListQuery translates the query modifiers into one SELECT statement.
func buildListQuery(queries []backend.Query) (string, map[string]interface{}, error) {
	limit := 0
	offset := 0
	orderBy := ""
	searchField := ""
	searchText := ""

	for _, q := range queries {
		switch q.Kind {
		case backend.QueryLimit:
			limit = q.N
		case backend.QueryOffset:
			offset = q.N
		case backend.QueryOrderDesc:
			orderBy = q.Field
		case backend.QuerySearch:
			searchField = q.Field
			searchText = q.Text
		}
	}

	vars := make(map[string]interface{})
	query := `SELECT * FROM type::table($tb) WHERE owner = $owner`

	if searchField != "" {
		if !validIdent(searchField) {
			return "", nil, backend.NewError(backend.TypeDocumentInvalidStructure, "invalid search field")
		}
		query += fmt.Sprintf(` AND string::contains(string::lowercase(%s), string::lowercase($search))`, searchField)
		vars["search"] = searchText
	}

	if orderBy != "" {
		if !validIdent(orderBy) {
			return "", nil, backend.NewError(backend.TypeDocumentInvalidStructure, "invalid order field")
		}
		query += fmt.Sprintf(` ORDER BY %s DESC`, orderBy)
	}

	if limit > 0 || offset > 0 {
		if limit <= 0 {
			limit = 100
		}
		query += ` LIMIT $limit START $offset`
		vars["limit"] = limit
		vars["offset"] = offset
	}

	return query, vars, nil
}

// parseDocument splits a row into platform fields and client data.
func parseDocument(row interface{}) (*backend.Document, bool) {
	record, ok := asRecord(row)
	if !ok {
		return nil, false
	}

	doc := &backend.Document{
		ID:        recordIDString(record["id"]),
		CreatedAt: parseTime(record["created_at"]),
		UpdatedAt: parseTime(record["updated_at"]),
		Data:      make(map[string]any),
	}
	for key, value := range record {
		if reservedFields[key] {
			continue
		}
		doc.Data[key] = value
	}
	return doc, true
}
