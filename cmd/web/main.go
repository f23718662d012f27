// @title           jobboard API
// @version         1.0
// @description     REST backend доски вакансий (вакансии, компании, заказы, профили, справочники).
// @host            localhost:4000
// @BasePath        /

package main

import "jobboard_backend/internal/app"

func main() {
	app.Run()
}
