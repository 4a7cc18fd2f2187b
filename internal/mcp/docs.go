package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `projects keeps a list of DIY projects.

A project has an ID assigned on creation, a name, estimated and actual
hours, a difficulty and notes. Only the name is required.

Workflow:
1) list_projects to see IDs and names.
2) get_project(id) for every field of one project.
3) add_project to create; update_project(id, ...) to change fields.
   Fields you omit or leave blank in update_project keep their value.

Field rules: projects://docs/fields
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "projects://docs/fields",
		Name:        "docs_fields",
		Title:       "Project fields",
		Description: "Accepted values for every project field and the errors returned for bad input.",
		Content: `# Project fields

| Field | Type | Rules |
|---|---|---|
| id | integer | assigned by the store, never reused |
| name | string | required, at most 128 characters |
| estimated_hours | decimal string | optional, 0 to 99999.99, kept to two digits ("10" is stored as "10.00") |
| actual_hours | decimal string | same as estimated_hours |
| difficulty | integer | optional, 1 to 5 |
| notes | string | optional |

## Errors

- INVALID_INPUT: a field failed to parse or is out of range. details.field names it.
- PROJECT_NOT_FOUND: no project has the given ID.
- STORE_ERROR: the database rejected or failed the operation.

Blank values in update_project are not errors: they keep the current value.
There is no way to clear an optional field through update_project.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
