package streak

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/scout"
)

// Network returns the startups of the default pipeline with their custom fields decoded.
func (c *Client) Network(ctx context.Context) ([]scout.Startup, error) {
	boxes, err := c.Boxes(ctx, c.Pipeline)
	if err != nil {
		return nil, err
	}
	fields, err := c.Fields(ctx, c.Pipeline)
	if err != nil {
		return nil, err
	}
	return NewNetwork(boxes, fields)
}

// NewNetwork converts boxes into startups, decoding the StartupFields.
//
// Fields missing from the pipeline are absent from every startup.
func NewNetwork(boxes []Box, fields []Field) ([]scout.Startup, error) {
	type column struct {
		name    string
		key     string
		decoder *Decoder
	}
	var columns []column
	var errs []error
	var focus *Decoder
	for _, name := range scout.StartupFields {
		f, ok := FieldByName(fields, name)
		if !ok {
			continue
		}
		d, err := NewDecoder(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if name == "Focus" {
			focus = d
		}
		columns = append(columns, column{name, f.Key, d})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("cannot decode startup network fields: %w", err)
	}

	startups := make([]scout.Startup, 0, len(boxes))
	for _, b := range boxes {
		s := scout.Startup{
			Key:              b.Key,
			Name:             b.Name,
			Stage:            b.Stage,
			Fields:           make(map[string]scout.FieldValue),
			QualityRank:      -1,
			Created:          b.Created,
			Updated:          b.Updated,
			CallLogCount:     b.CallLogCount,
			GmailThreadCount: b.GmailThreadCount,
			HasContacts:      b.HasContacts,
		}
		for _, col := range columns {
			if v, ok := col.decoder.Decode(b.Fields[col.key]); ok {
				s.Fields[col.name] = v
			}
		}

		if v, ok := s.Field("Quality Check"); ok {
			s.Quality = v.Text
			s.QualityRank = scout.QualityRank(v.Text)
		}
		if focus != nil {
			v, ok := s.Field("Focus")
			s.Focus = make(map[string]bool)
			for _, tag := range focus.Labels() {
				s.Focus[tag] = ok && v.Contains(tag)
			}
		}
		if v, ok := s.Field("Website"); ok {
			s.Website = v.Text
			s.Domain, _ = scout.FindDomain(v.Text)
		}
		if v, ok := s.Field("permalink"); ok && v.Text != "" {
			s.Permalink = scout.PermalinkOf(v.Text)
		}
		s.Contact = scout.ContactLevel(s)
		startups = append(startups, s)
	}
	return startups, nil
}
