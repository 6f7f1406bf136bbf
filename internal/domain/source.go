package domain

// SourceData é o formato normalizado entregue pelas fontes de dados (planilha ou arquivo local)
type SourceData struct {
	Total            float64
	ChefsProjet      []SourceChefProjet
	ObjectifAnnuel   float64
	ObjectifDecembre float64
	WinRate          float64
	SkippedRows      int
}

type SourceChefProjet struct {
	Nom            string
	Prenom         string
	ChiffreAffaire float64
	PhotoFilename  *string
}

// ToChefProjet converte a linha da fonte para o registro persistido
func (s SourceChefProjet) ToChefProjet() *ChefProjet {
	return &ChefProjet{
		Nom:            s.Nom,
		Prenom:         s.Prenom,
		ChiffreAffaire: s.ChiffreAffaire,
		PhotoFilename:  NormalizePhoto(s.PhotoFilename),
	}
}
