package novelas

type NovelaRequest struct {
	Titulo    string `json:"titulo" binding:"required"`
	Descricao string `json:"descricao"`
}

type CapituloRequest struct {
	Titulo   string `json:"titulo" binding:"required"`
	Conteudo string `json:"conteudo" binding:"required"`
}
