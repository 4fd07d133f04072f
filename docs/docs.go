// Package docs регистрирует Swagger-описание File API для /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{.Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Приветствие",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Версия API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/version.Version"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Проверка живости",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/games": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Games"
                ],
                "summary": "Список игр",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/list.GameList"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Индекс недоступен или пуст",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "description": "Возвращает идентификаторы всех игр, перечисленных в индексе файлов."
            }
        },
        "/games/{game_id}/datasets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Games"
                ],
                "summary": "Датасеты игры по месяцам",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Идентификатор игры",
                        "name": "game_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/series.GameDatasets"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Некорректный идентификатор игры",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Игра не найдена",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Индекс недоступен",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "description": "Непрерывный ряд от первого до последнего месяца с датасетом, с числом сессий и ссылками на файлы."
            }
        },
        "/games/{game_id}/datasets/{year}/{month}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Games"
                ],
                "summary": "Описание датасета за месяц",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Идентификатор игры",
                        "name": "game_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Год",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Месяц",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/datasets.FileInfo"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Некорректный идентификатор игры",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Игра или датасет не найдены",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Индекс недоступен",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "description": "Находит датасет, диапазон которого содержит месяц, и возвращает ссылки на его файлы."
            }
        },
        "/games/{game_id}/datasets/{year}/{month}/{file_type}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Games"
                ],
                "summary": "Содержимое файла датасета",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Идентификатор игры",
                        "name": "game_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Год",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Месяц",
                        "name": "month",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Тип файла",
                        "name": "file_type",
                        "in": "path",
                        "required": true,
                        "enum": [
                            "SESSION",
                            "PLAYER",
                            "POPULATION",
                            "EVENT"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/datafile.Table"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Некорректный идентификатор игры или тип файла",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Датасет или файл не найдены",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Источник данных недоступен",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "501": {
                        "description": "Файлы событий не поддерживаются",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/getGameFileInfoByMonth": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Legacy"
                ],
                "summary": "Описание датасета за месяц",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Идентификатор игры",
                        "name": "game_id",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Год",
                        "name": "year",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "Месяц",
                        "name": "month",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/datasets.FileInfo"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Некорректный идентификатор игры",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Игра или датасет не найдены",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Индекс недоступен",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/getMonthlyGameUsage": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Legacy"
                ],
                "summary": "Сессии игры по месяцам",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Идентификатор игры",
                        "name": "game_id",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/monthlyusage.GameSessions"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Некорректный идентификатор игры",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Игра не найдена",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Индекс недоступен",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/getGameUsageByMonth": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Legacy"
                ],
                "summary": "Статистика игры за месяц",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Идентификатор игры",
                        "name": "game_id",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Год",
                        "name": "year",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "Месяц",
                        "name": "month",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/usage.MonthUsage"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Некорректный идентификатор игры",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Для игры не настроен BigQuery",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Ошибка BigQuery",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "description": "Считает уникальные сессии по событиям в BigQuery. Дни без событий равны нулю."
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "OK"
                },
                "message": {
                    "type": "string",
                    "example": "Retrieved monthly game usage"
                },
                "data": {}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "Error"
                },
                "message": {
                    "type": "string",
                    "example": "Bad GameID ''"
                },
                "data": {
                    "type": "object"
                }
            }
        },
        "version.Version": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string"
                }
            }
        },
        "list.GameList": {
            "type": "object",
            "properties": {
                "game_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "datasets.MonthDatasets": {
            "type": "object",
            "properties": {
                "year": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "total_sessions": {
                    "type": "integer"
                },
                "sessions_file": {
                    "type": "string"
                },
                "players_file": {
                    "type": "string"
                },
                "population_file": {
                    "type": "string"
                }
            }
        },
        "series.GameDatasets": {
            "type": "object",
            "properties": {
                "game_id": {
                    "type": "string"
                },
                "datasets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/datasets.MonthDatasets"
                    }
                }
            }
        },
        "datasets.FileInfo": {
            "type": "object",
            "properties": {
                "first_year": {
                    "type": "integer"
                },
                "first_month": {
                    "type": "integer"
                },
                "last_year": {
                    "type": "integer"
                },
                "last_month": {
                    "type": "integer"
                },
                "raw_file": {
                    "type": "string"
                },
                "events_file": {
                    "type": "string"
                },
                "sessions_file": {
                    "type": "string"
                },
                "players_file": {
                    "type": "string"
                },
                "population_file": {
                    "type": "string"
                },
                "events_template": {
                    "type": "string"
                },
                "sessions_template": {
                    "type": "string"
                },
                "players_template": {
                    "type": "string"
                },
                "population_template": {
                    "type": "string"
                },
                "events_codespace": {
                    "type": "string"
                },
                "sessions_codespace": {
                    "type": "string"
                },
                "players_codespace": {
                    "type": "string"
                },
                "detectors_link": {
                    "type": "string"
                },
                "features_link": {
                    "type": "string"
                },
                "found_matching_range": {
                    "type": "boolean"
                }
            }
        },
        "datafile.Table": {
            "type": "object",
            "properties": {
                "columns": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "additionalProperties": true
                    }
                }
            }
        },
        "monthlyusage.MonthSessions": {
            "type": "object",
            "properties": {
                "year": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "total_sessions": {
                    "type": "integer"
                }
            }
        },
        "monthlyusage.GameSessions": {
            "type": "object",
            "properties": {
                "game_id": {
                    "type": "string"
                },
                "sessions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/monthlyusage.MonthSessions"
                    }
                }
            }
        },
        "usage.MonthUsage": {
            "type": "object",
            "properties": {
                "game_id": {
                    "type": "string"
                },
                "selected_month": {
                    "type": "integer"
                },
                "selected_year": {
                    "type": "integer"
                },
                "total_monthly_sessions": {
                    "type": "integer"
                },
                "sessions_by_day": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo метаданные описания, их можно переопределить при старте.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "OpenGameData File API",
	Description:      "Read-only API over the OpenGameData dataset index",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
