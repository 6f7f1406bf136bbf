// Package configfile lê e grava o arquivo JSON local usado no modo offline
package configfile

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const Mode = "OFFLINE"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// File é o formato do arquivo local
type File struct {
	ChiffreAffaireTotal float64     `json:"chiffre_affaire_total"`
	ChefsProjet         []FileEntry `json:"chefs_projet"`
	ObjectifAnnuel      *float64    `json:"objectif_annuel"`
	ObjectifDecembre    float64     `json:"objectif_decembre"`
	WinRate             float64     `json:"wr"`
}

type FileEntry struct {
	Nom            string  `json:"nom"`
	Prenom         string  `json:"prenom"`
	ChiffreAffaire float64 `json:"chiffre_affaire"`
	PhotoFilename  *string `json:"photo_filename"`
}

type ConfigFileIntegrator struct {
	path                  string
	defaultObjectifAnnuel float64
}

func New(cfg *config.Config) *ConfigFileIntegrator {
	return &ConfigFileIntegrator{
		path:                  cfg.Source.ConfigFilePath,
		defaultObjectifAnnuel: cfg.Source.DefaultObjectifAnnuel,
	}
}

func (s *ConfigFileIntegrator) Mode() string {
	return Mode
}

func (s *ConfigFileIntegrator) Path() string {
	return s.path
}

// Fetch lê o arquivo local e devolve o faturamento normalizado
func (s *ConfigFileIntegrator) Fetch(ctx context.Context) (*domain.SourceData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao ler arquivo de configuração: %s", domain.ErrSourceUnavailable, err.Error())
	}

	var file File
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("%w: JSON inválido em %s: %s", domain.ErrSourceUnavailable, s.path, err.Error())
	}

	data := &domain.SourceData{
		Total:            file.ChiffreAffaireTotal,
		ChefsProjet:      make([]domain.SourceChefProjet, 0, len(file.ChefsProjet)),
		ObjectifAnnuel:   s.defaultObjectifAnnuel,
		ObjectifDecembre: file.ObjectifDecembre,
		WinRate:          file.WinRate,
	}

	if file.ObjectifAnnuel != nil {
		data.ObjectifAnnuel = *file.ObjectifAnnuel
	}

	for i, entry := range file.ChefsProjet {
		nom := strings.TrimSpace(entry.Nom)
		prenom := strings.TrimSpace(entry.Prenom)

		if nom == "" || prenom == "" {
			logrus.WithField("index", i).Warn("configfile: CDP sem nom/prenom ignorado")
			data.SkippedRows++
			continue
		}

		data.ChefsProjet = append(data.ChefsProjet, domain.SourceChefProjet{
			Nom:            nom,
			Prenom:         prenom,
			ChiffreAffaire: entry.ChiffreAffaire,
			PhotoFilename:  entry.PhotoFilename,
		})
	}

	return data, nil
}

// ReadRaw devolve o conteúdo do arquivo como objeto JSON genérico, sem normalização
func (s *ConfigFileIntegrator) ReadRaw() (map[string]any, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
	}

	raw := map[string]any{}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("erro ao decodificar arquivo de configuração: %w", err)
	}

	return raw, nil
}

// WriteRaw grava o conteúdo recebido, apenas reindentado, de forma atômica (arquivo temporário + rename).
// Ordem das chaves e representação dos números são preservadas.
func (s *ConfigFileIntegrator) WriteRaw(body []byte) error {
	var indented bytes.Buffer
	if err := stdjson.Indent(&indented, bytes.TrimSpace(body), "", "  "); err != nil {
		return fmt.Errorf("erro ao formatar configuração: %w", err)
	}
	content := indented.Bytes()

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(content, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("erro ao gravar arquivo temporário: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("erro ao fechar arquivo temporário: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("erro ao ajustar permissões: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("erro ao substituir arquivo de configuração: %w", err)
	}

	return nil
}

// LastModified retorna a data de modificação do arquivo
func (s *ConfigFileIntegrator) LastModified() (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("erro ao consultar arquivo de configuração: %w", err)
	}
	return info.ModTime(), nil
}
