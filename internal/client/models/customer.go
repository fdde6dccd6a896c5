package models

import "strings"

// Kind selects one of the two customer-record collections.
type Kind string

const (
	KindPF Kind = "pf" // individuals (pessoa física)
	KindPJ Kind = "pj" // organizations (pessoa jurídica)
)

// ParseKind accepts "pf"/"pj" in any case.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(s)) {
	case KindPF:
		return KindPF, true
	case KindPJ:
		return KindPJ, true
	}
	return "", false
}

// ClientePF is an individual customer record.
type ClientePF struct {
	PublicID               string   `json:"publicId"`
	PrimeiroNome           string   `json:"primeiroNome"`
	NomeDoMeio             string   `json:"nomeDoMeio,omitempty"`
	Sobrenome              string   `json:"sobrenome"`
	NomeCompleto           string   `json:"nomeCompleto"`
	CPF                    string   `json:"cpf"`
	RG                     string   `json:"rg,omitempty"`
	DataNascimento         string   `json:"dataNascimento,omitempty"`
	Idade                  *int     `json:"idade,omitempty"`
	Sexo                   string   `json:"sexo,omitempty"`
	Email                  string   `json:"email,omitempty"`
	NomeMae                string   `json:"nomeMae,omitempty"`
	NomePai                string   `json:"nomePai,omitempty"`
	EstadoCivil            string   `json:"estadoCivil,omitempty"`
	Profissao              string   `json:"profissao,omitempty"`
	Nacionalidade          string   `json:"nacionalidade,omitempty"`
	Naturalidade           string   `json:"naturalidade,omitempty"`
	TipoCliente            string   `json:"tipoCliente,omitempty"`
	OrigemLead             string   `json:"origemLead,omitempty"`
	TotalComprasRealizadas *int     `json:"totalComprasRealizadas,omitempty"`
	TotalVendasRealizadas  *int     `json:"totalVendasRealizadas,omitempty"`
	ValorTotalComprado     *float64 `json:"valorTotalComprado,omitempty"`
	ValorTotalVendido      *float64 `json:"valorTotalVendido,omitempty"`
	Bloqueado              *bool    `json:"bloqueado,omitempty"`
	MotivoBloqueio         string   `json:"motivoBloqueio,omitempty"`
	Observacoes            string   `json:"observacoes,omitempty"`
	Ativo                  *bool    `json:"ativo,omitempty"`
	DataCriacao            string   `json:"dataCriacao,omitempty"`
	DataAtualizacao        string   `json:"dataAtualizacao,omitempty"`
}

// ClientePJ is an organization customer record.
type ClientePJ struct {
	PublicID               string   `json:"publicId"`
	RazaoSocial            string   `json:"razaoSocial"`
	NomeFantasia           string   `json:"nomeFantasia"`
	NomeExibicao           string   `json:"nomeExibicao"`
	CNPJ                   string   `json:"cnpj"`
	InscricaoEstadual      string   `json:"inscricaoEstadual,omitempty"`
	InscricaoMunicipal     string   `json:"inscricaoMunicipal,omitempty"`
	DataAbertura           string   `json:"dataAbertura,omitempty"`
	PorteEmpresa           string   `json:"porteEmpresa,omitempty"`
	NaturezaJuridica       string   `json:"naturezaJuridica,omitempty"`
	AtividadePrincipal     string   `json:"atividadePrincipal,omitempty"`
	CapitalSocial          *float64 `json:"capitalSocial,omitempty"`
	NomeResponsavel        string   `json:"nomeResponsavel,omitempty"`
	CPFResponsavel         string   `json:"cpfResponsavel,omitempty"`
	CargoResponsavel       string   `json:"cargoResponsavel,omitempty"`
	Site                   string   `json:"site,omitempty"`
	Email                  string   `json:"email,omitempty"`
	TipoCliente            string   `json:"tipoCliente,omitempty"`
	OrigemLead             string   `json:"origemLead,omitempty"`
	TotalComprasRealizadas *int     `json:"totalComprasRealizadas,omitempty"`
	TotalVendasRealizadas  *int     `json:"totalVendasRealizadas,omitempty"`
	ValorTotalComprado     *float64 `json:"valorTotalComprado,omitempty"`
	ValorTotalVendido      *float64 `json:"valorTotalVendido,omitempty"`
	Bloqueado              *bool    `json:"bloqueado,omitempty"`
	MotivoBloqueio         string   `json:"motivoBloqueio,omitempty"`
	Observacoes            string   `json:"observacoes,omitempty"`
	Ativo                  *bool    `json:"ativo,omitempty"`
	DataCriacao            string   `json:"dataCriacao,omitempty"`
	DataAtualizacao        string   `json:"dataAtualizacao,omitempty"`
}

// Customer is the view shared by both record kinds.
type Customer interface {
	ID() string
	DisplayName() string
	Document() string
	Active() bool
	Blocked() bool
	LeadOrigin() string
}

func (c ClientePF) ID() string          { return c.PublicID }
func (c ClientePF) DisplayName() string { return c.NomeCompleto }
func (c ClientePF) Document() string    { return c.CPF }
func (c ClientePF) Active() bool        { return c.Ativo != nil && *c.Ativo }
func (c ClientePF) Blocked() bool       { return c.Bloqueado != nil && *c.Bloqueado }
func (c ClientePF) LeadOrigin() string  { return c.OrigemLead }

func (c ClientePJ) ID() string { return c.PublicID }
func (c ClientePJ) DisplayName() string {
	if c.NomeExibicao != "" {
		return c.NomeExibicao
	}
	if c.RazaoSocial != "" {
		return c.RazaoSocial
	}
	return c.NomeFantasia
}
func (c ClientePJ) Document() string   { return c.CNPJ }
func (c ClientePJ) Active() bool       { return c.Ativo != nil && *c.Ativo }
func (c ClientePJ) Blocked() bool      { return c.Bloqueado != nil && *c.Bloqueado }
func (c ClientePJ) LeadOrigin() string { return c.OrigemLead }

// PFSummary is returned by the CPF lookup.
type PFSummary struct {
	PrimeiroNome string `json:"primeiroNome"`
	Sobrenome    string `json:"sobrenome"`
	PublicID     string `json:"publicId"`
}

// PJSummary is returned by the CNPJ lookup.
type PJSummary struct {
	NomeFantasia string `json:"nomeFantasia"`
	PublicID     string `json:"publicId"`
}

// BlockRequest is the body of PATCH .../bloquear.
type BlockRequest struct {
	MotivoBloqueio  string `json:"motivoBloqueio"`
	UsuarioBloqueou string `json:"usuarioBloqueou"`
}
