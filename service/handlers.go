package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/ontograph/query"
	"github.com/c360studio/ontograph/retrieve"
	"github.com/c360studio/ontograph/snapshot"
)

// handlerFunc answers one request against the given snapshot. The returned
// bytes are the JSON response body.
type handlerFunc func(snap *snapshot.Snapshot, data []byte) ([]byte, error)

// ErrorResponse is the body returned when a query fails.
type ErrorResponse struct {
	Error string `json:"error"`
}

func errorResponse(err error) []byte {
	data, _ := json.Marshal(ErrorResponse{Error: err.Error()})
	return data
}

// PropertyValue is one object of a property, as JSON.
type PropertyValue struct {
	Value   string `json:"value"`
	Literal bool   `json:"literal,omitempty"`
}

// DescribeRequest asks for the full description of one resource.
type DescribeRequest struct {
	Resource string `json:"resource"`
}

// DescribeResponse carries the label, comment, types, and properties of a
// resource.
type DescribeResponse struct {
	IRI        string                     `json:"iri"`
	Label      string                     `json:"label"`
	Comment    string                     `json:"comment,omitempty"`
	Types      []string                   `json:"types,omitempty"`
	Properties map[string][]PropertyValue `json:"properties"`
}

func (s *Service) handleDescribe(snap *snapshot.Snapshot, data []byte) ([]byte, error) {
	var req DescribeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	engine := query.New(snap.Store, s.logger)
	desc, err := engine.Describe(req.Resource)
	if err != nil {
		return nil, err
	}
	resp := DescribeResponse{
		IRI:        desc.IRI,
		Label:      desc.Label,
		Comment:    desc.Comment,
		Types:      desc.Types,
		Properties: make(map[string][]PropertyValue, len(desc.Properties)),
	}
	for pred, objs := range desc.Properties {
		values := make([]PropertyValue, 0, len(objs))
		for _, obj := range objs {
			values = append(values, PropertyValue{Value: obj.Value, Literal: obj.IsLiteral()})
		}
		resp.Properties[pred] = values
	}
	return json.Marshal(resp)
}

// InstancesRequest asks for the direct instances of a class.
type InstancesRequest struct {
	Class string `json:"class"`
}

// InstancesResponse lists instance IRIs in assertion order.
type InstancesResponse struct {
	Class     string   `json:"class"`
	Instances []string `json:"instances"`
}

func (s *Service) handleInstances(snap *snapshot.Snapshot, data []byte) ([]byte, error) {
	var req InstancesRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	engine := query.New(snap.Store, s.logger)
	instances, err := engine.InstancesOf(req.Class)
	if err != nil {
		return nil, err
	}
	return json.Marshal(InstancesResponse{Class: req.Class, Instances: instances})
}

// LabelRequest asks for the human-readable label of a resource.
type LabelRequest struct {
	Resource string `json:"resource"`
}

// LabelResponse carries the label, falling back to the IRI local name.
type LabelResponse struct {
	Resource string `json:"resource"`
	Label    string `json:"label"`
}

func (s *Service) handleLabel(snap *snapshot.Snapshot, data []byte) ([]byte, error) {
	var req LabelRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	engine := query.New(snap.Store, s.logger)
	label, err := engine.LabelOf(req.Resource)
	if err != nil {
		return nil, err
	}
	return json.Marshal(LabelResponse{Resource: req.Resource, Label: label})
}

// RetrieveRequest asks for the facts most relevant to a free-text question.
type RetrieveRequest struct {
	Question string `json:"question"`
}

// RetrieveResponse carries formatted fact lines.
type RetrieveResponse struct {
	Facts []string `json:"facts"`
}

func (s *Service) handleRetrieve(snap *snapshot.Snapshot, data []byte) ([]byte, error) {
	var req RetrieveRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	engine := query.New(snap.Store, s.logger)
	retriever := retrieve.New(engine, s.opts, s.logger)
	facts := retriever.RelevantFacts(req.Question)
	if facts == nil {
		facts = []string{}
	}
	return json.Marshal(RetrieveResponse{Facts: facts})
}

// PathRequest asks for a chain of triples connecting two resources.
type PathRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PathFact is one hop of a path, as JSON.
type PathFact struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	Literal   bool   `json:"literal,omitempty"`
}

// PathResponse carries a path hop by hop plus its formatted rendering.
// Found is false when the endpoints are not connected.
type PathResponse struct {
	Found     bool       `json:"found"`
	Facts     []PathFact `json:"facts"`
	Formatted []string   `json:"formatted"`
}

func (s *Service) handlePath(snap *snapshot.Snapshot, data []byte) ([]byte, error) {
	var req PathRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	engine := query.New(snap.Store, s.logger)
	facts, err := engine.Path(req.From, req.To)
	if err != nil {
		return nil, err
	}
	resp := PathResponse{Found: facts != nil, Facts: []PathFact{}, Formatted: []string{}}
	for _, f := range facts {
		resp.Facts = append(resp.Facts, PathFact{
			Subject:   f.Subject,
			Predicate: f.Predicate,
			Object:    f.Object,
			Literal:   f.LiteralObject,
		})
		resp.Formatted = append(resp.Formatted, engine.FormatFact(f))
	}
	return json.Marshal(resp)
}

// StatsResponse summarizes the current snapshot.
type StatsResponse struct {
	SnapshotID string    `json:"snapshot_id"`
	Triples    int       `json:"triples"`
	Terms      int       `json:"terms"`
	Sources    []string  `json:"sources"`
	LoadedAt   time.Time `json:"loaded_at"`
}

func (s *Service) handleStats(snap *snapshot.Snapshot, _ []byte) ([]byte, error) {
	return json.Marshal(StatsResponse{
		SnapshotID: snap.ID,
		Triples:    snap.Store.Len(),
		Terms:      snap.Store.Dict().Len(),
		Sources:    snap.Sources,
		LoadedAt:   snap.LoadedAt,
	})
}
