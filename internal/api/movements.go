package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"moneytrack/internal/domain"
)

func (c *Client) FetchMovements(ctx context.Context, page int) (domain.Page[domain.Movement], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per", strconv.Itoa(c.per))
	return do[domain.Page[domain.Movement]](ctx, c, get("movements", q))
}

func (c *Client) FetchMovementsByAccount(ctx context.Context, accountID uuid.UUID, page int) (domain.Page[domain.Movement], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per", strconv.Itoa(c.per))
	q.Set("accountID", accountID.String())
	return do[domain.Page[domain.Movement]](ctx, c, get("movements", q))
}

func (c *Client) SetCategory(ctx context.Context, movementID, categoryID uuid.UUID) (domain.Movement, error) {
	body := struct {
		CategoryID uuid.UUID `json:"categoryID"`
	}{CategoryID: categoryID}
	return do[domain.Movement](ctx, c, put("movements/"+movementID.String()+"/category", body))
}

// Import uploads a CSV as multipart form data. The file part is named
// "records[]" and shipped as text/csv; the option fields ride along as
// plain form fields.
func (c *Client) Import(ctx context.Context, accountID uuid.UUID, imp domain.MovementImport) (domain.Page[domain.Movement], error) {
	if err := c.validateBody(imp); err != nil {
		return domain.Page[domain.Movement]{}, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="records[]"; filename="`+imp.Filename+`"`)
	header.Set("Content-Type", "text/csv")
	part, err := w.CreatePart(header)
	if err != nil {
		return domain.Page[domain.Movement]{}, badURL(err)
	}
	if _, err := part.Write(imp.Data); err != nil {
		return domain.Page[domain.Movement]{}, badURL(err)
	}

	fields := map[string]string{
		"fileType":          string(imp.FileType),
		"skipParsingErrors": strconv.FormatBool(imp.SkipParsingErrors),
		"skipExisting":      strconv.FormatBool(imp.SkipExisting),
	}
	if imp.RemoveText != nil {
		fields["removeText"] = *imp.RemoveText
	}
	for _, name := range []string{"fileType", "skipParsingErrors", "skipExisting", "removeText"} {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return domain.Page[domain.Movement]{}, badURL(err)
		}
	}
	if err := w.Close(); err != nil {
		return domain.Page[domain.Movement]{}, badURL(err)
	}

	req := request{
		method: "POST",
		path:   "movements/" + accountID.String() + "/import",
		raw:    &rawBody{contentType: w.FormDataContentType(), data: buf.Bytes()},
	}
	return do[domain.Page[domain.Movement]](ctx, c, req)
}
