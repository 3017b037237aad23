package chatwire

import (
	"bytes"
	"encoding/json"
)

// PartType discriminates the ContentPart variants.
type PartType string

const (
	PartText       PartType = "text"
	PartImageURL   PartType = "image_url"
	PartInputAudio PartType = "input_audio"
)

// ImageDetail controls the fidelity with which the model processes an
// image reference.
type ImageDetail string

const (
	DetailAuto ImageDetail = "auto"
	DetailLow  ImageDetail = "low"
	DetailHigh ImageDetail = "high"
)

// AudioFormat is the encoding of inline audio data.
type AudioFormat string

const (
	FormatWAV AudioFormat = "wav"
	FormatMP3 AudioFormat = "mp3"
)

// ImageURL is the payload of an image_url content part.
type ImageURL struct {
	URL    string      `json:"url"`
	Detail ImageDetail `json:"detail,omitempty"`
}

// InputAudio is the payload of an input_audio content part. Data carries
// base64-encoded audio.
type InputAudio struct {
	Data   string      `json:"data"`
	Format AudioFormat `json:"format,omitempty"`
}

// ContentPart is one unit of message content, discriminated by Type.
// Exactly one of the variant payloads is active: Text for "text",
// ImageURL for "image_url", InputAudio for "input_audio".
type ContentPart struct {
	Type       PartType    `json:"type"`
	Text       string      `json:"text,omitempty"`
	ImageURL   *ImageURL   `json:"image_url,omitempty"`
	InputAudio *InputAudio `json:"input_audio,omitempty"`
}

// Validate checks that the payload required for the declared Type is
// present and that enumerated sub-fields hold known members.
func (p ContentPart) Validate() error {
	switch p.Type {
	case PartText:
		return nil
	case PartImageURL:
		if p.ImageURL == nil || p.ImageURL.URL == "" {
			return schemaErr("image_url.url", "required for type \"image_url\"")
		}
		switch p.ImageURL.Detail {
		case "", DetailAuto, DetailLow, DetailHigh:
		default:
			return schemaErrf("image_url.detail", "unknown detail %q", p.ImageURL.Detail)
		}
		return nil
	case PartInputAudio:
		if p.InputAudio == nil || p.InputAudio.Data == "" {
			return schemaErr("input_audio.data", "required for type \"input_audio\"")
		}
		switch p.InputAudio.Format {
		case "", FormatWAV, FormatMP3:
		default:
			return schemaErrf("input_audio.format", "unknown format %q", p.InputAudio.Format)
		}
		return nil
	case "":
		return schemaErr("type", "required field missing")
	default:
		return schemaErrf("type", "unknown content part type %q", p.Type)
	}
}

func (p ContentPart) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type       PartType    `json:"type"`
		Text       *string     `json:"text,omitempty"`
		ImageURL   *ImageURL   `json:"image_url,omitempty"`
		InputAudio *InputAudio `json:"input_audio,omitempty"`
	}
	w := wire{Type: p.Type, ImageURL: p.ImageURL, InputAudio: p.InputAudio}
	// The text key is required for text parts even when empty.
	if p.Type == PartText {
		w.Text = &p.Text
	} else if p.Text != "" {
		w.Text = &p.Text
	}
	return json.Marshal(w)
}

func (p *ContentPart) UnmarshalJSON(data []byte) error {
	type plain ContentPart
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = ContentPart(v)
	if p.Type == PartText {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if _, ok := raw["text"]; !ok {
			return schemaErr("text", "required for type \"text\"")
		}
	}
	return p.Validate()
}

type contentForm int

const (
	contentAbsent contentForm = iota
	contentText
	contentParts
)

// MessageContent holds the content of a message in either of its two wire
// forms: a plain string or an ordered sequence of content parts. The form
// the payload used is preserved; the two are never coerced into one
// another. The zero value means the content key was absent.
type MessageContent struct {
	form  contentForm
	text  string
	parts []ContentPart
}

// Text returns the string-form content. It is empty for the parts form.
func (c MessageContent) Text() string { return c.text }

// Parts returns the parts-form content in payload order, nil for the
// string form.
func (c MessageContent) Parts() []ContentPart { return c.parts }

// IsText reports whether the content was given as a plain string.
func (c MessageContent) IsText() bool { return c.form == contentText }

// IsParts reports whether the content was given as a sequence of parts.
func (c MessageContent) IsParts() bool { return c.form == contentParts }

// IsZero reports whether no content was supplied.
func (c MessageContent) IsZero() bool { return c.form == contentAbsent }

// TextContent wraps a plain string as message content.
func TextContent(text string) MessageContent {
	return MessageContent{form: contentText, text: text}
}

// PartsContent wraps an ordered sequence of content parts as message
// content.
func PartsContent(parts ...ContentPart) MessageContent {
	return MessageContent{form: contentParts, parts: parts}
}

// Validate checks every part of parts-form content. String-form content is
// always valid.
func (c MessageContent) Validate() error {
	if c.form != contentParts {
		return nil
	}
	for _, p := range c.parts {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c MessageContent) MarshalJSON() ([]byte, error) {
	switch c.form {
	case contentText:
		return json.Marshal(c.text)
	case contentParts:
		return json.Marshal(c.parts)
	default:
		return []byte("null"), nil
	}
}

func (c *MessageContent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = MessageContent{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = MessageContent{form: contentText, text: s}
		return nil
	case '[':
		var parts []ContentPart
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		*c = MessageContent{form: contentParts, parts: parts}
		return nil
	default:
		return schemaErr("content", "must be a string or an array of content parts")
	}
}
