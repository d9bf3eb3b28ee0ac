package main

// @title Predictive Keyboard APIs
// @version 1.0
// @description Next character and next word predictions for an on-screen keyboard.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /
// @schemes http
import (
	_ "predictive-keyboard/docs"
	protocol "predictive-keyboard/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
