package gridtransport

import "testing"

func TestConfig(t *testing.T) {
	c := NewConfig()
	c.Set("Format", "jpg")
	c.Set("quality", "80")
	c.Set("Placeholder", "true")

	s, found, err := c.GetString("format")
	if err != nil || !found || s != "jpg" {
		t.Errorf("Bad GetString: (%q, %t, %v)\n", s, found, err)
	}
	i, found, err := c.GetInt("Quality")
	if err != nil || !found || i != 80 {
		t.Errorf("Bad GetInt: (%d, %t, %v)\n", i, found, err)
	}
	b, found, err := c.GetBool("placeholder")
	if err != nil || !found || !b {
		t.Errorf("Bad GetBool: (%t, %t, %v)\n", b, found, err)
	}

	if _, found, _ := c.GetString("missing"); found {
		t.Errorf("Found setting that was never set\n")
	}
	c.Set("bad", 3.2)
	if _, _, err := c.GetString("bad"); err == nil {
		t.Errorf("Expected error on non-string setting\n")
	}
}
