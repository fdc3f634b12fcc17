package inspect

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/filter"
	"github.com/0xalexb/hjarta-config/property"
)

// PropertyView is the JSON form of a filtered property.
type PropertyView struct {
	Key      string            `json:"key"`
	Value    string            `json:"value"`
	Source   string            `json:"source,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// FiltersView is the JSON form of the filter chain.
type FiltersView struct {
	Filters []filter.Info `json:"filters"`
	Chain   string        `json:"chain"`
}

// ConverterView lists the converter chain of one target type.
type ConverterView struct {
	Target     string          `json:"target"`
	Converters []ConverterInfo `json:"converters"`
}

// ConverterInfo describes one converter of a chain.
type ConverterInfo struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

type errorView struct {
	Error string `json:"error"`
}

type handler struct {
	cfg *config.Configuration
}

// NewHandler returns the inspection endpoints for cfg mounted below prefix.
func NewHandler(cfg *config.Configuration, prefix string) (http.Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfiguration
	}

	h := &handler{cfg: cfg}
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+prefix+"/properties", h.properties)
	mux.HandleFunc("GET "+prefix+"/properties/{key...}", h.property)
	mux.HandleFunc("GET "+prefix+"/filters", h.filters)
	mux.HandleFunc("GET "+prefix+"/converters", h.converters)

	return recovery(logRequests(mux)), nil
}

func (h *handler) properties(w http.ResponseWriter, _ *http.Request) {
	entries, err := h.cfg.Entries()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	views := make([]PropertyView, 0, len(entries))
	for _, value := range entries {
		views = append(views, viewOf(value))
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].Key < views[j].Key
	})

	writeJSON(w, http.StatusOK, views)
}

func (h *handler) property(w http.ResponseWriter, r *http.Request) {
	value, err := h.cfg.Value(r.PathValue("key"))

	switch {
	case errors.Is(err, config.ErrKeyNotFound):
		writeError(w, http.StatusNotFound, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, viewOf(value))
	}
}

func (h *handler) filters(w http.ResponseWriter, _ *http.Request) {
	manager := h.cfg.Filters()
	filters := manager.Filters()

	view := FiltersView{
		Filters: make([]filter.Info, 0, len(filters)),
		Chain:   manager.String(),
	}

	for _, f := range filters {
		view.Filters = append(view.Filters, filter.Describe(f))
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *handler) converters(w http.ResponseWriter, _ *http.Request) {
	registry := h.cfg.Converters()
	types := registry.Types()
	views := make([]ConverterView, 0, len(types))

	for _, target := range types {
		view := ConverterView{Target: target.String(), Converters: nil}

		for _, info := range registry.Converters(target) {
			view.Converters = append(view.Converters, ConverterInfo{Name: info.Name, Priority: info.Priority})
		}

		views = append(views, view)
	}

	writeJSON(w, http.StatusOK, views)
}

func viewOf(value *property.Value) PropertyView {
	return PropertyView{
		Key:      value.Key(),
		Value:    value.Value(),
		Source:   value.Source(),
		Metadata: value.Metadata(),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("writing response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorView{Error: err.Error()})
}
