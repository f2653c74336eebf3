package independentwork

import (
	"encoding/base64"
	"strings"
	"time"

	independentworkerrors "go-workboard/internal/independentwork/errors"

	"github.com/google/uuid"
)

const (
	MaxAttachments      = 5
	MaxAttachmentBytes  = 5 << 20
	dataURLBase64Marker = ";base64,"
	defaultAttachmentCT = "application/octet-stream"
)

// splitDataURL accepts "data:<type>;base64,<payload>" or a bare payload.
func splitDataURL(raw string) (contentType, payload string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "data:") {
		return "", raw
	}
	idx := strings.Index(raw, dataURLBase64Marker)
	if idx < 0 {
		return "", raw
	}
	return raw[len("data:"):idx], raw[idx+len(dataURLBase64Marker):]
}

// decodedSize is the byte length payload decodes to, without decoding it.
func decodedSize(payload string) int {
	n := base64.StdEncoding.DecodedLen(len(payload))
	if len(payload) >= 2 {
		n -= strings.Count(payload[len(payload)-2:], "=")
	}
	return n
}

func decodeAttachments(entryID uuid.UUID, reqs []AttachmentRequest, now time.Time) ([]Attachment, error) {
	if len(reqs) > MaxAttachments {
		return nil, independentworkerrors.ErrTooManyAttachments
	}

	out := make([]Attachment, 0, len(reqs))
	for _, r := range reqs {
		urlType, payload := splitDataURL(r.Data)
		if decodedSize(payload) > MaxAttachmentBytes {
			return nil, independentworkerrors.ErrAttachmentTooLarge
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil || len(data) == 0 {
			return nil, independentworkerrors.ErrInvalidAttachment
		}

		contentType := strings.TrimSpace(r.ContentType)
		if contentType == "" {
			contentType = urlType
		}
		if contentType == "" {
			contentType = defaultAttachmentCT
		}

		out = append(out, Attachment{
			ID:          uuid.New(),
			EntryID:     entryID,
			FileName:    strings.TrimSpace(r.FileName),
			ContentType: contentType,
			Size:        int64(len(data)),
			Data:        data,
			CreatedAt:   now,
		})
	}
	return out, nil
}

func attachmentResponses(attachments []Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, len(attachments))
	for i, a := range attachments {
		out[i] = AttachmentResponse{
			ID:          a.ID.String(),
			FileName:    a.FileName,
			ContentType: a.ContentType,
			Size:        a.Size,
			Data:        base64.StdEncoding.EncodeToString(a.Data),
		}
	}
	return out
}
