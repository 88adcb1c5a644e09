// Command gensample writes sample export files for every supported
// format into a directory, for manual testing of the import pipeline.
//
//	go run ./cmd/gensample -output ./samples
//
// The generated kdbx database is encrypted with the password "sample".
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	gokeepasslib "github.com/tobischo/gokeepasslib/v3"
	"github.com/tobischo/gokeepasslib/v3/wrappers"
)

const kdbxPassword = "sample"

const keepassCSV = `"Group","Title","Username","Password","URL","Notes","TOTP","Icon","Last Modified","Created"
"Root","Mail account","jane","hunter2","https://mail.example.com","personal mailbox","","0","2024-01-02T10:00:00","2024-01-01T09:00:00"
"Root/Work","VPN","jane.doe","s3cret!","vpn.example.org","","JBSWY3DPEHPK3PXP","0","2024-01-03T11:30:00","2024-01-01T09:05:00"
`

const keepassXML = `<?xml version="1.0" encoding="UTF-8"?>
<pwlist>
  <Root>
    <Group>
      <Name>Root</Name>
      <Entry>
        <String><Key>Title</Key><Value>Mail account</Value></String>
        <String><Key>UserName</Key><Value>jane</Value></String>
        <String><Key>Password</Key><Value>hunter2</Value></String>
        <String><Key>URL</Key><Value>https://mail.example.com</Value></String>
        <String><Key>Notes</Key><Value>personal mailbox</Value></String>
      </Entry>
      <Group>
        <Name>Work</Name>
        <Entry>
          <String><Key>Title</Key><Value>VPN</Value></String>
          <String><Key>UserName</Key><Value>jane.doe</Value></String>
          <String><Key>Password</Key><Value>s3cret!</Value></String>
          <String><Key>URL</Key><Value>vpn.example.org</Value></String>
        </Entry>
      </Group>
    </Group>
  </Root>
</pwlist>
`

const lastpassCSV = `url,username,password,totp,extra,name,grouping,fav
https://mail.example.com,jane,hunter2,,personal mailbox,Mail account,Email,1
http://sn,,,,"NoteType:Credit Card
Name on Card: Jane Doe
Type: Visa
Number: 4111111111111111
Security Code: 123
Expiration Date:March,2027
Notes: backup card",My Visa,Finance,0
http://sn,,,,"NoteType:Wi-Fi Password
SSID: HomeNet
Password: wifi-pass-123
Authentication: WPA2",HomeNet,,0
http://sn,,,,just a plain secure note,Plain note,,0
`

const nordpassCSV = `name,url,additional_urls,username,password,note,cardholdername,cardnumber,cvc,expirydate,zipcode,folder,full_name,phone_number,email,address1,address2,city,country,state,type,custom_fields
Mail account,https://mail.example.com,"[""mail2.example.com""]",jane,hunter2,personal mailbox,,,,,,Email,,,,,,,,,password,"[{""label"":""Recovery code"",""value"":""abc-123"",""type"":""text""}]"
My Visa,,,,,backup card,Jane Doe,4111111111111111,123,03/27,90210,Finance,,,,,,,,,credit_card,
Jane,,,,,,,,,,,,"Jane Doe","{""num"":""5551234567"",""ext"":""12""}",jane@example.com,1 Main St,,Springfield,USA,IL,identity,
Email,,,,,,,,,,,,,,,,,,,,folder,
`

func main() {
	outputDir := flag.String("output", "./samples", "Directory to write sample exports into")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	samples := map[string][]byte{
		"keepass.csv":  []byte(keepassCSV),
		"keepass.xml":  []byte(keepassXML),
		"lastpass.csv": []byte(lastpassCSV),
		"nordpass.csv": []byte(nordpassCSV),
	}

	kdbx, err := buildKDBX(kdbxPassword)
	if err != nil {
		log.Fatalf("Failed to build kdbx sample: %v", err)
	}
	samples["passwords.kdbx"] = kdbx

	for name, content := range samples {
		path := filepath.Join(*outputDir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", path, len(content))
	}

	fmt.Printf("\nThe kdbx sample is encrypted with the password %q.\n", kdbxPassword)
}

func buildKDBX(password string) ([]byte, error) {
	entry := gokeepasslib.NewEntry()
	entry.Values = append(entry.Values,
		value("Title", "Mail account"),
		value("UserName", "jane"),
		protectedValue("Password", "hunter2"),
		value("URL", "https://mail.example.com"),
		value("Notes", "personal mailbox"),
		protectedValue("otp", "JBSWY3DPEHPK3PXP"),
	)

	work := gokeepasslib.NewGroup()
	work.Name = "Work"

	vpn := gokeepasslib.NewEntry()
	vpn.Values = append(vpn.Values,
		value("Title", "VPN"),
		value("UserName", "jane.doe"),
		protectedValue("Password", "s3cret!"),
		value("URL", "vpn.example.org"),
	)
	work.Entries = append(work.Entries, vpn)

	root := gokeepasslib.NewGroup()
	root.Name = "Root"
	root.Entries = append(root.Entries, entry)
	root.Groups = append(root.Groups, work)

	db := gokeepasslib.NewDatabase(gokeepasslib.WithDatabaseKDBXVersion4())
	db.Credentials = gokeepasslib.NewPasswordCredentials(password)
	db.Content.Root = &gokeepasslib.RootData{Groups: []gokeepasslib.Group{root}}

	if err := db.LockProtectedEntries(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := gokeepasslib.NewEncoder(&buf).Encode(db); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func value(key, content string) gokeepasslib.ValueData {
	return gokeepasslib.ValueData{Key: key, Value: gokeepasslib.V{Content: content}}
}

func protectedValue(key, content string) gokeepasslib.ValueData {
	return gokeepasslib.ValueData{
		Key:   key,
		Value: gokeepasslib.V{Content: content, Protected: wrappers.NewBoolWrapper(true)},
	}
}
