// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/licitacoes": {
            "get": {"tags": ["licitacoes"], "summary": "List open tenders", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["licitacoes"], "summary": "Create a tender", "security": [{"Bearer": []}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "INVALID_REQUEST"}, "403": {"description": "FORBIDDEN"}, "409": {"description": "CONDO_INACTIVE"}}}
        },
        "/licitacoes/{id}": {
            "get": {"tags": ["licitacoes"], "summary": "Get a tender", "responses": {"200": {"description": "OK"}, "404": {"description": "TENDER_NOT_FOUND"}}}
        },
        "/licitacoes/{id}/fechar": {
            "post": {"tags": ["licitacoes"], "summary": "Close a tender", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "TENDER_NOT_OPEN"}}}
        },
        "/licitacoes/{id}/vencedor": {
            "post": {"tags": ["licitacoes"], "summary": "Select the winning candidacy", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "CANDIDACY_MISMATCH"}, "409": {"description": "INVALID_TRANSITION"}}}
        },
        "/licitacoes/{id}/embargo": {
            "post": {"tags": ["admin"], "summary": "Embargo a tender", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "INVALID_TRANSITION"}}}
        },
        "/licitacoes/{id}/candidaturas": {
            "get": {"tags": ["candidaturas"], "summary": "List candidacies of a tender", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["candidaturas"], "summary": "Apply to a tender, debiting its cost in coins", "security": [{"Bearer": []}],
                "responses": {"201": {"description": "Created"}, "402": {"description": "INSUFFICIENT_BALANCE"}, "409": {"description": "ALREADY_APPLIED / TENDER_NOT_OPEN"}}}
        },
        "/licitacoes/{id}/avaliacao": {
            "get": {"tags": ["avaliacoes"], "summary": "Get the rating of a tender", "responses": {"200": {"description": "OK"}, "404": {"description": "RATING_NOT_FOUND"}}},
            "post": {"tags": ["avaliacoes"], "summary": "Rate the winning company", "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "DUPLICATE_RATING"}}}
        },
        "/empresas": {
            "post": {"tags": ["cadastro"], "summary": "Register a company", "responses": {"201": {"description": "Created"}, "409": {"description": "ALREADY_REGISTERED"}}}
        },
        "/condominios": {
            "post": {"tags": ["cadastro"], "summary": "Register a condo", "responses": {"201": {"description": "Created"}, "409": {"description": "ALREADY_REGISTERED"}}}
        },
        "/empresas/{id}/saldo": {
            "get": {"tags": ["moedas"], "summary": "Company coin balance", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/empresas/{id}/transacoes": {
            "get": {"tags": ["moedas"], "summary": "Company coin transactions", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/catalogo": {
            "get": {"tags": ["checkout"], "summary": "Coin packages and plans", "responses": {"200": {"description": "OK"}}}
        },
        "/condominios-certificados": {
            "get": {"tags": ["diretorio"], "summary": "Approved condos ordered by name, with rank", "responses": {"200": {"description": "OK"}}}
        },
        "/empresas-parceiras": {
            "get": {"tags": ["diretorio"], "summary": "Approved companies ordered by name, with rating average", "responses": {"200": {"description": "OK"}}}
        },
        "/checkout/moedas": {
            "post": {"tags": ["checkout"], "summary": "Buy a coin package", "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/checkout/planos": {
            "post": {"tags": ["checkout"], "summary": "Subscribe to a plan", "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/webhooks/mercadopago": {
            "post": {"tags": ["pagamentos"], "summary": "Mercado Pago notification", "responses": {"200": {"description": "Handled or ignored"}, "503": {"description": "RECONCILIATION_UNAVAILABLE"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Certifica Condo API",
	Description:      "Marketplace of condo service tenders paid with coins; payments reconciled from Mercado Pago.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
