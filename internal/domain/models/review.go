package models

type (
	// PRReference identifica una Pull Request en el proveedor VCS.
	// Es inmutable una vez parseada de la URL.
	PRReference struct {
		Owner  string
		Repo   string
		Number int
	}

	// PRData contiene la información extraída de una Pull Request.
	PRData struct {
		Number      int
		Title       string
		Author      string
		HeadBranch  string
		BaseBranch  string
		Description string
		Files       []ChangedFile
	}

	// ChangedFile es un archivo modificado en el PR, con su contenido
	// ya truncado al límite configurado.
	ChangedFile struct {
		Path    string
		Status  string
		Changes int
		Excerpt string
	}

	// PromptMessage es un mensaje de chat con rol para el modelo.
	PromptMessage struct {
		Role    string
		Content string
	}

	// ReviewVerdict es el veredicto estructurado que devuelve el modelo.
	// Es el contrato entre la salida cruda del modelo y el publicador.
	ReviewVerdict struct {
		Summary  string          `json:"summary"`
		Comments []ReviewComment `json:"comments"`
		Labels   []string        `json:"labels"`
	}

	// ReviewComment es un comentario puntual del veredicto.
	ReviewComment struct {
		Path          string `json:"path"`
		Block         string `json:"block,omitempty"`
		Issue         string `json:"issue"`
		CorrectedCode string `json:"corrected_code,omitempty"`
		Explanation   string `json:"comment,omitempty"`
	}

	// ReviewReceipt es la respuesta del proveedor al publicar la review.
	ReviewReceipt struct {
		ID      int64  `json:"id"`
		HTMLURL string `json:"html_url"`
		State   string `json:"state"`
	}

	// ReviewResult agrupa el resultado completo de una corrida del pipeline.
	ReviewResult struct {
		Verdict       ReviewVerdict  `json:"model_output"`
		Receipt       *ReviewReceipt `json:"review,omitempty"`
		AppliedLabels []string       `json:"labels,omitempty"`
	}
)

const (
	// PromptRoleSystem y PromptRoleUser son los únicos roles que emite el builder.
	PromptRoleSystem = "system"
	PromptRoleUser   = "user"
)
