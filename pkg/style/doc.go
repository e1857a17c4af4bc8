// Package style defines the visual styling for fuga's terminal output.
//
// All styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. They are declared in the embedded styles.yaml
// and looked up by name with Get.
package style
