package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

type cycleLogFile struct {
	CycleDay     int      `json:"cycle_day"`
	BaselineTemp float64  `json:"baseline_temp"`
	Symptoms     []string `json:"symptoms"`
}

func (m *Model) persistCycleLogState() error {
	if strings.TrimSpace(m.stateFilePath) == "" {
		return nil
	}
	dir := filepath.Dir(m.stateFilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	symptoms := make([]string, 0, len(m.CycleLog.Symptoms))
	for _, s := range m.CycleLog.Symptoms {
		if strings.TrimSpace(s) != "" {
			symptoms = append(symptoms, s)
		}
	}
	payload, err := json.MarshalIndent(cycleLogFile{
		CycleDay:     m.CycleLog.Day,
		BaselineTemp: m.CycleLog.BaselineTemp,
		Symptoms:     symptoms,
	}, "", "  ")
	if err != nil {
		return err
	}
	tmp := m.stateFilePath + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.stateFilePath)
}

func loadCycleLogState(path string) (CycleLogState, error) {
	out := CycleLogState{}
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return out, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return out, nil
	}
	var state cycleLogFile
	if err := json.Unmarshal(raw, &state); err != nil {
		return out, err
	}
	out.Day = state.CycleDay
	out.BaselineTemp = state.BaselineTemp
	for _, s := range state.Symptoms {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out.Symptoms = append(out.Symptoms, s)
	}
	return out, nil
}
