package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Trabajos API Documentation",
        "title": "Trabajos API",
        "version": "1.0"
    },
    "host": "localhost:4000",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/trabajos": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "description": "Returns all tasks ordered by creation time, newest first",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Array of tasks",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Task"
                            }
                        }
                    },
                    "500": {
                        "description": "Store failure; body is an empty array"
                    }
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create task",
                "description": "Creates a task from a non-empty title",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "task",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {
                                    "type": "string",
                                    "example": "Buy milk"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created task",
                        "schema": {
                            "$ref": "#/definitions/Task"
                        }
                    },
                    "400": {
                        "description": "Missing or empty title"
                    }
                }
            }
        },
        "/trabajos/{id}": {
            "put": {
                "tags": ["Tasks"],
                "summary": "Update task",
                "description": "Updates title and/or done; omitted fields keep their stored value",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "task",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {
                                    "type": "string"
                                },
                                "done": {
                                    "type": "integer",
                                    "enum": [0, 1]
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated task",
                        "schema": {
                            "$ref": "#/definitions/Task"
                        }
                    },
                    "400": {
                        "description": "Invalid id"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete task",
                "description": "Removes the task; deleting a nonexistent id still succeeds",
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Task deleted"
                    },
                    "400": {
                        "description": "Invalid id"
                    }
                }
            }
        }
    },
    "definitions": {
        "Task": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "title": {
                    "type": "string",
                    "example": "Buy milk"
                },
                "done": {
                    "type": "integer",
                    "enum": [0, 1],
                    "example": 0
                },
                "created_at": {
                    "type": "string",
                    "example": "2024-01-01 12:00:00"
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Trabajos API",
	Description:      "Trabajos API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
